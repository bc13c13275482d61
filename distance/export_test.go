package distance

// Test bridge for the row scheduler; compiled only with the tests.

// RowFunc mirrors rowFunc for distance_test.
type RowFunc = rowFunc

// EvalRows exposes evalRows to distance_test.
var EvalRows = evalRows

// CancelCheckEvery is the row stride between context polls.
const CancelCheckEvery = cancelCheckEvery
