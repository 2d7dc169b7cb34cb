// Package fvarsharp stores the facevarying infinite-sharpness verdict of
// half-edges as a bit-packed tri-state table.
//
// What:
//
//   - Table holds one row per edge slot of a face and one 2-bit code per
//     facevarying channel, sixteen channels to a uint32 word.
//   - Codes: 0 = NotSharp, 1 = Sharp, 3 = Unknown (not computed yet).
//   - Code 2 is illegal. Reading it panics with ErrIllegalCode, because it can
//     only appear through memory corruption or a writer bypassing Set.
//
// Why:
//
//   - Deciding whether facevarying data is discontinuous across an edge needs
//     a scan of both incident faces. The verdict is computed once and cached.
//   - Rows are addressed by the edge's slot in its face, so the table lives
//     with the face and never has to track edge identity.
//
// Complexity:
//
//   - Get / Set:      O(1).
//   - ResetRow / CopyRow: O(ceil(channels/16)).
//
// Errors:
//
//   - ErrBadShape:    negative rows or channels passed to NewTable.
//   - ErrIllegalCode: code 2 observed by Get (delivered through panic).
package fvarsharp
