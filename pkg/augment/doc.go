// Package augment provides a randomized augmentation pipeline for batches of
// paired images and labels.
//
// An Orchestrator is built once from a Config and then applied to as many
// batches as needed. Each call runs the enabled operators in a fixed order:
// colour and contrast changes first, then blur, then the geometric operators
// and finally noise, so that resampling never smooths out a photometric
// perturbation and the noise is never blurred or resampled away.
//
// Geometric operators move the label exactly like its image. Photometric
// operators leave the label untouched. Random crops are not part of the chain
// and are requested explicitly with CutSizeHard.
//
// Randomness comes from a single Source owned by the Orchestrator. Seed it with
// WithSeed to get reproducible batches. With WithConcurrency, every stage fans
// the batch out to a fixed number of workers, each one with its own generator
// seeded from the Orchestrator's, which keeps seeded runs reproducible as long
// as the concurrency does not change.
//
// Observers implementing model.Hook can be attached with WithHooks. The measure
// and drawer subpackages provide hooks to time every operator and to render the
// operator chain as a graph.
package augment
