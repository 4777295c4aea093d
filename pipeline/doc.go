// SPDX-License-Identifier: MIT

// Package pipeline wires the clustering stages into one batch run:
//
//	records → funding.Build → funding.FeatureMatrix (impute) → scale.FitTransform
//	        → elbow.SelectK (unless K is fixed) → kmeans.Train → interpret.Interpret
//
// Every invocation starts from scratch; nothing learned in one Run is kept
// for the next.
package pipeline
