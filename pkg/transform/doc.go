// Package transform implements the randomized operators of the augmentation
// chain and the deterministic primitives they are built on.
//
// Every operator is a function of a random Source, an image, an optional
// paired label and an intensity. Operators never modify their inputs: they
// return new images, or the inputs themselves when the drawn outcome is a no-op.
// Geometric operators apply the exact same spatial operation to the image and
// its label. Photometric operators only touch the image.
//
// Spatial primitives run channel by channel on image.Gray planes with
// github.com/disintegration/imaging, so labels with any number of channels go
// through the same code as the images they belong to.
package transform
