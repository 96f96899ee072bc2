// Package tokenlist holds the mutable token sequence the stripping engine
// works on. One Arena owns the contiguous token storage for an input; a
// List is an index range into that arena. Every List produced by slicing
// or splitting views the same tokens, so an edit made through a
// statement-level fragment is visible when the whole arena is serialized.
// The arena never reallocates after construction, which is what makes the
// *Token pointers handed out by At and Split stable.
package tokenlist
