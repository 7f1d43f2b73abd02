package query

import (
	"errors"
	"fmt"
)

// Validation constants to prevent resource exhaustion on hostile input
const (
	// MaxFilterLength is the maximum allowed filter string length (1MB)
	MaxFilterLength = 1024 * 1024

	// MaxTokens is the maximum number of tokens in a filter
	MaxTokens = 1000

	// MaxExpressionDepth is the maximum nesting depth for expressions
	MaxExpressionDepth = 100

	// MaxColumnNameLength is the maximum length for a column name
	MaxColumnNameLength = 256
)

var (
	// ErrSyntax is returned for malformed filter or selection strings
	ErrSyntax = errors.New("syntax error")

	// ErrUnknownColumn is returned when a column is not in the header
	ErrUnknownColumn = errors.New("unknown column")

	// ErrFilterTooLong is returned when a filter exceeds MaxFilterLength
	ErrFilterTooLong = errors.New("filter too long")

	// ErrTooManyTokens is returned when a filter has too many tokens
	ErrTooManyTokens = errors.New("too many tokens in filter")

	// ErrExpressionTooDeep is returned when expression nesting exceeds limit
	ErrExpressionTooDeep = errors.New("expression nesting too deep")

	// ErrColumnNameTooLong is returned when a column name is too long
	ErrColumnNameTooLong = errors.New("column name too long")
)

// unknownColumn wraps ErrUnknownColumn with the offending name
func unknownColumn(name string) error {
	return fmt.Errorf("%w: %s", ErrUnknownColumn, name)
}

// ValidateFilter performs length validation on filter input
func ValidateFilter(filter string) error {
	if len(filter) > MaxFilterLength {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrFilterTooLong, len(filter), MaxFilterLength)
	}
	return nil
}

// ValidateColumnName validates column name length
func ValidateColumnName(name string) error {
	if len(name) > MaxColumnNameLength {
		return fmt.Errorf("%w: %d chars (max %d)", ErrColumnNameTooLong, len(name), MaxColumnNameLength)
	}
	return nil
}

// ValidateTokens validates token count
func ValidateTokens(tokens []Token) error {
	if len(tokens) > MaxTokens {
		return fmt.Errorf("%w: %d tokens (max %d)", ErrTooManyTokens, len(tokens), MaxTokens)
	}
	return nil
}

// Columns returns the column names an expression references, in first
// appearance order.
func Columns(expr Expression) []string {
	seen := make(map[string]bool)
	var columns []string

	var walk func(Expression)
	walk = func(e Expression) {
		switch v := e.(type) {
		case *BinaryExpr:
			walk(v.Left)
			walk(v.Right)
		case *NotExpr:
			walk(v.Expr)
		case *ComparisonExpr:
			if !seen[v.Column] {
				seen[v.Column] = true
				columns = append(columns, v.Column)
			}
		}
	}
	walk(expr)

	return columns
}

// ValidateColumns checks every column an expression references against
// the table header.
func ValidateColumns(expr Expression, header []string) error {
	known := make(map[string]bool, len(header))
	for _, col := range header {
		known[col] = true
	}

	for _, col := range Columns(expr) {
		if !known[col] {
			return unknownColumn(col)
		}
	}
	return nil
}

// ExpressionDepthCounter tracks expression nesting depth
type ExpressionDepthCounter struct {
	depth    int
	maxDepth int
}

// NewExpressionDepthCounter creates a new depth counter
func NewExpressionDepthCounter() *ExpressionDepthCounter {
	return &ExpressionDepthCounter{depth: 0, maxDepth: MaxExpressionDepth}
}

// Enter increments depth and returns error if limit exceeded
func (c *ExpressionDepthCounter) Enter() error {
	c.depth++
	if c.depth > c.maxDepth {
		return fmt.Errorf("%w: %d (max %d)", ErrExpressionTooDeep, c.depth, c.maxDepth)
	}
	return nil
}

// Exit decrements depth
func (c *ExpressionDepthCounter) Exit() {
	c.depth--
}
