package domain

// DefaultOrderNumberPrefix is prepended to the random code when building
// human-readable order numbers, e.g. "ORD-7KQ2M9XA".
const DefaultOrderNumberPrefix = "ORD-"

// DefaultOrderCodeLength is the length of the random alphanumeric part of
// an order number.
const DefaultOrderCodeLength = 8

// DefaultCurrencySymbol is the symbol prefixed to formatted money amounts.
const DefaultCurrencySymbol = "$"
