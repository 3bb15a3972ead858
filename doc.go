// Package shape demonstrates single-level behavior delegation between two
// record types.
//
// The core idea is:
//   - [Shape] is the base record. It owns the position fields X and Y and the
//     behavior that operates on them, such as [Shape.Move].
//   - [Rectangle] embeds [Shape], delegates its initialization to Shape's and
//     inherits every Shape method unchanged.
//   - Capability checks are interface checks: [IsShape] reports whether a
//     value satisfies [Shaper], [IsRectangle] whether it satisfies
//     [Rectangular].
//
// Construct values with [NewShape] and [NewRectangle]. A zero value has no
// defaults applied and reports its kind as "Unknown".
//
// Logging goes through a package-wide zap logger, see [SetLogger].

package shape
