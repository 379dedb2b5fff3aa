// Package accessor resolves array-like values into a uniform element
// access descriptor.
//
// What:
//
//   - Descriptor[T]: {Data, Kind, AccessorProtocol, Get, Set}. Get/Set are
//     always valid for Data, whether Data is a plain slice or a value that
//     exposes its own Get/Set methods (the "accessor protocol").
//   - Kind: the closed set of data type identifiers ("float64", "float32",
//     "int32", "int16", "int8", "uint32", "uint16", "uint8", "uint8c",
//     "complex128", "complex64", "generic"). The strings are a stable
//     contract: downstream code switches on them.
//   - Complex128Array / Complex64Array: interleaved (re, im) storage that
//     only speaks the accessor protocol.
//
// Why:
//
//   - The "is this exotic?" decision is taken once, at the call boundary.
//     Kernels in package strided then pick either a direct slice loop or a
//     Get/Set loop and never re-check types per element.
//
// Errors:
//
//   - ErrType / ErrRange are the two error classes shared by every package
//     in this module. Package sentinels wrap one of them, so both
//     errors.Is(err, ErrNotArrayLike) and errors.Is(err, ErrType) hold.
package accessor
