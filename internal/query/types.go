// Package query implements the row filter expressions behind --where and
// the column projection behind --select.
//
// Filter strings are tokenized by a lexer and parsed into an Expression
// tree that evaluates against one row at a time. Comparisons cover
// numbers, strings, and booleans; AND, OR, and NOT combine them, with
// parentheses for grouping.
//
// Example usage:
//
//	expr, err := query.ParseFilter("Age > 30 AND Status == 'Active'")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	filtered, err := query.ApplyFilter(tbl, expr)
package query

import "github.com/vegasq/xlcat/internal/table"

// TokenType represents the type of a token
type TokenType int

const (
	// Keywords
	TokenAnd TokenType = iota
	TokenOr
	TokenNot

	// Operators
	TokenEqual        // = or ==
	TokenNotEqual     // != or <>
	TokenLess         // <
	TokenGreater      // >
	TokenLessEqual    // <=
	TokenGreaterEqual // >=

	// Literals
	TokenString
	TokenNumber
	TokenIdent
	TokenBool

	// Grouping
	TokenLeftParen
	TokenRightParen

	// Special
	TokenEOF
	TokenError
)

// Token represents a lexical token
type Token struct {
	Type  TokenType
	Value string
}

// Expression represents a boolean expression over a single row
type Expression interface {
	Evaluate(row table.Row) (bool, error)
}

// BinaryExpr represents a binary expression (AND/OR)
type BinaryExpr struct {
	Left     Expression
	Operator TokenType // TokenAnd or TokenOr
	Right    Expression
}

// NotExpr negates an expression
type NotExpr struct {
	Expr Expression
}

// ComparisonExpr represents a comparison expression
type ComparisonExpr struct {
	Column   string
	Operator TokenType
	Value    interface{}
}

// Evaluate evaluates a binary expression
func (b *BinaryExpr) Evaluate(row table.Row) (bool, error) {
	left, err := b.Left.Evaluate(row)
	if err != nil {
		return false, err
	}

	right, err := b.Right.Evaluate(row)
	if err != nil {
		return false, err
	}

	switch b.Operator {
	case TokenAnd:
		return left && right, nil
	case TokenOr:
		return left || right, nil
	default:
		return false, nil
	}
}

// Evaluate evaluates a negation
func (n *NotExpr) Evaluate(row table.Row) (bool, error) {
	result, err := n.Expr.Evaluate(row)
	if err != nil {
		return false, err
	}
	return !result, nil
}

// Evaluate evaluates a comparison expression.
//
// Rows are expected to carry every header column, so a missing key means
// the filter references a column the table does not have.
func (c *ComparisonExpr) Evaluate(row table.Row) (bool, error) {
	value, exists := row[c.Column]
	if !exists {
		return false, unknownColumn(c.Column)
	}

	return compare(value, c.Operator, c.Value)
}
