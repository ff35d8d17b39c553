package linalg

// CloseEpsilon is the distance below which IsClose treats two vectors as
// equal. It bounds the Euclidean length of the difference vector, not the
// per-component error.
const CloseEpsilon = 1e-6
