// Package core holds the width arithmetic shared by the index and nonmax
// packages.
//
// Every supported width is an unsigned Go integer type. The platform-native
// width is uint.
package core
