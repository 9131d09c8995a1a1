package domain

import (
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// Money is an exact decimal amount. Monetary fields must round-trip without
// binary-float precision loss, so Money serializes as a plain JSON number
// (never a quoted string) and as a DynamoDB number attribute.
type Money struct {
	d decimal.Decimal
}

var (
	_ attributevalue.Marshaler   = Money{}
	_ attributevalue.Unmarshaler = (*Money)(nil)
)

// NewMoney parses a decimal amount from its string representation.
func NewMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid decimal amount %q: %w", s, err)
	}
	return Money{d: d}, nil
}

// MustMoney is NewMoney that panics on a malformed amount. For fixtures and
// literals only.
func MustMoney(s string) Money {
	m, err := NewMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) String() string {
	return m.d.String()
}

// Equal reports whether two amounts represent the same value, ignoring
// trailing zeros.
func (m Money) Equal(o Money) bool {
	return m.d.Equal(o.d)
}

// MarshalJSON emits the amount as an unquoted number.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.d.String()), nil
}

// UnmarshalJSON accepts either a JSON number or a quoted numeric string.
func (m *Money) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		m.d = decimal.Zero
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("invalid decimal amount %q: %w", s, err)
	}
	m.d = d
	return nil
}

// MarshalDynamoDBAttributeValue stores the amount as a number attribute.
func (m Money) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	return &types.AttributeValueMemberN{Value: m.d.String()}, nil
}

// UnmarshalDynamoDBAttributeValue reads a number attribute back into an exact
// decimal.
func (m *Money) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	n, ok := av.(*types.AttributeValueMemberN)
	if !ok {
		return fmt.Errorf("expected a number attribute for a monetary value, got %T", av)
	}
	d, err := decimal.NewFromString(n.Value)
	if err != nil {
		return fmt.Errorf("invalid decimal amount %q: %w", n.Value, err)
	}
	m.d = d
	return nil
}
