// Package framegen generates a small, deterministic corpus of synthetic
// token-prediction training frames for smoke-testing a training pipeline.
//
// A frame pairs a short context of token IDs with the token that follows it,
// a twelve-word feature payload and some positional metadata. The corpus is
// enumerated by hand from a catalog of known patterns ("Hello world!",
// "What is your name?" and a few variants) and written as a JSON array to
//
//	<user-data-root>/hasher/data/frames/training_frames.json
//
// # Modes
//
// Two target conventions exist and are selected per run:
//
//   - raw: the target is the token ID as-is.
//   - remapped: the target is reduced to target % 1000, and catalogs are
//     expected to carry marker words in the feature vector.
//
// # Packages
//
//   - core/frame: Frame, FeatureVector, Mode and the Encode function
//   - catalog: built-in pattern catalogs and the JSON fixture loader
//   - corpus: generation, data-root resolution, JSON codec and atomic writer
//   - metrics: corpus statistics (gonum) and target charts (gonum/plot)
//   - pkg/config, pkg/errors, pkg/log: run settings, typed errors, logging
//   - cmd/framegen: the command
//
// # Quick Start
//
//	cat := catalog.Remapped()
//	frames, err := corpus.Generate(cat, frame.Remapped)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	root, _ := corpus.DataRoot()
//	if _, err := corpus.Write(ctx, corpus.OutputPath(root), frames); err != nil {
//	    log.Fatal(err)
//	}
package framegen
