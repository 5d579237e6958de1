// Package serdes owns the trait-like Serializer/Deserializer contracts
// the codecs are generic over. It knows nothing about packets, framing,
// or transports.
//
// Concrete encoders live in the serdes/refcodec subpackage as reference
// implementations, not as part of this contract.
package serdes
