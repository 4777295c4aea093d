// Package funding turns a stream of funding-round records into one feature
// vector per startup.
//
// Each FeatureVector carries total and average funding, round count, years
// active, funding per year, log10(x+1) transforms of the two amounts, and the
// category/location of the entity's first record. FeatureMatrix lays out the
// five clustering columns (see Feature) and replaces non-finite cells with 0,
// which is the imputation policy the scaling stage relies on.
//
// Usage:
//
//	vectors, err := funding.Build(records)
//	if errors.Is(err, funding.ErrEmptyInput) {
//	  // nothing to cluster
//	}
//	X, imputed, err := funding.FeatureMatrix(vectors)
package funding
