/*
Package money implements exact monetary amounts in various currencies.
It stores every amount as an integer number of minor units of its [Currency]
and uses the [decimal] package only for scalar factors and decimal input,
so no operation ever goes through binary floating point.

# Features

  - Immutable monetary values, ensuring safe usage across multiple goroutines
  - Support for various currencies, their scales and display symbols
  - Arithmetic and comparison operations between amounts of one currency
  - Multiplication and division by decimal factors with a choice of [RoundingMode]
  - Allocation of an amount into equal parts or by ratios without losing a minor unit

# Representation

An [Amount] consists of a Currency and an int64 count of minor units.
The Currency is implemented as an integer index into an in-memory array
containing information such as code, symbol, and scale.
One major unit is worth [Currency.MinorUnitFactor] minor units.

# Rounding

Every operation that may produce a fraction of a minor unit rounds it explicitly:
constructors from decimals and floats, [Amount.Mul] and [Amount.Quo].
The default is [HalfEven] (banker's rounding), which avoids a systematic bias
across repeated transactions. Methods with the Round suffix accept any other mode.
Intermediate results are computed exactly before the single rounding step.

# Allocation

[Amount.Quo] rounds its result independently and is not suitable for dividing
an amount among several recipients.
[Amount.Split] and [Amount.Allocate] distribute the exact number of minor
units instead, so the parts always sum up to the original amount.
Leftover minor units go to the first parts.

# Errors

Arithmetic between amounts of different currencies fails with
[ErrCurrencyMismatch], division by zero with [ErrDivisionByZero],
invalid allocation arguments with [ErrInvalidArgument], and constructing an
amount without a currency with [ErrNullCurrency].
Errors are wrapped with the operands involved; use [errors.Is] to test them.
Only the Must functions panic.
*/
package money
