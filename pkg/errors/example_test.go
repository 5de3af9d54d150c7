// Package errors provides examples of structured error handling in coltable.
package errors_test

import (
	"fmt"

	"github.com/colstorehq/coltable/pkg/errors"
)

// Example demonstrates basic error creation and wrapping.
func Example() {
	err := errors.New(errors.ErrorTypeArity, "schema and columns differ in length")
	err = err.WithDetail("schema_len", 3).WithDetail("columns_len", 2)

	fmt.Println(err.Error())

	// Output:
	// arity: schema and columns differ in length
}

// ExampleWrap shows how to wrap an underlying error with coltable context.
func ExampleWrap() {
	originalErr := fmt.Errorf("value %d out of range", 12)

	err := errors.Wrap(originalErr, errors.ErrorTypeOrdinal, "get failed").
		WithDetail("ordinal", 12)

	if errors.IsType(err, errors.ErrorTypeOrdinal) {
		fmt.Println("This is an ordinal error")
	}

	// Output:
	// This is an ordinal error
}

// ExampleErrorType demonstrates the error kinds this package defines.
func ExampleErrorType() {
	arityErr := errors.New(errors.ErrorTypeArity, "arity mismatch")
	fmt.Printf("Arity error: %v\n", arityErr)

	unimplementedErr := errors.New(errors.ErrorTypeUnimplemented, "representation not implemented").
		WithDetail("representation", "OBJECT_DICTIONARY")
	fmt.Printf("Unimplemented error: %v\n", unimplementedErr)

	// Output:
	// Arity error: arity: arity mismatch
	// Unimplemented error: unimplemented: representation not implemented
}

// Example_errorChain shows wrapping context at successive layers.
func Example_errorChain() {
	err := freezeColumn()
	if err != nil {
		err = errors.Wrap(err, errors.ErrorTypeFreezePrecondition, "column freeze failed").
			WithDetail("column", "age")

		fmt.Println("Full error chain:", err)
	}

	// Output:
	// Full error chain: freeze_precondition: column freeze failed: unsupported_primitive: value kind does not match declared column type
}

func freezeColumn() error {
	return errors.New(errors.ErrorTypeUnsupportedPrimitive, "value kind does not match declared column type")
}

// ExampleIsType demonstrates checking error types through a wrapped chain.
func ExampleIsType() {
	ordinalErr := errors.New(errors.ErrorTypeOrdinal, "ordinal out of range")
	wrappedErr := errors.Wrap(ordinalErr, errors.ErrorTypeFreezePrecondition, "decode failed during freeze check")

	fmt.Printf("Is ordinal error: %v\n", errors.IsType(ordinalErr, errors.ErrorTypeOrdinal))
	fmt.Printf("Wrapped error is freeze_precondition: %v\n", errors.IsType(wrappedErr, errors.ErrorTypeFreezePrecondition))
	fmt.Printf("Wrapped error contains ordinal type: %v\n", errors.IsType(wrappedErr, errors.ErrorTypeOrdinal))

	// Output:
	// Is ordinal error: true
	// Wrapped error is freeze_precondition: true
	// Wrapped error contains ordinal type: false
}
