package components

// Image is an opaque frame handed out by the asset provider.
// The core only needs its size, for hit regions.
type Image interface {
	Width() float32
	Height() float32
}

// Frames is an ordered frame sequence.
type Frames []Image
