// Package domain models the nuclear explosions dataset (1945-1998).
//
// # Data Source
//
// Records originate from the "Nuclear Explosions" CSV published with the
// Stockholm International Peace Research Institute (SIPRI) compilation, one
// row per detonation. Column headers keep the dataset's original spelling,
// including its typos: "Data.Yeild.Lower", "Location.Cordinates.Latitude".
//
// # Dataset Conventions
//
// Yield bounds:
//
//	"Data.Yeild.Lower" and "Data.Yeild.Upper" are kiloton (TNT equivalent)
//	estimates. Many rows carry 0 for both bounds when the yield was not
//	published. The point estimate used throughout the analysis is the
//	midpoint: average_yield = (lower + upper) / 2.
//
// Purpose codes (selection):
//
//	Wr      weapons development
//	We      weapons effects evaluation
//	Pne     peaceful nuclear explosion
//	Combat  wartime use (Hiroshima and Nagasaki, the only two records)
//
// Type codes describe the delivery or emplacement environment, e.g.
// Atmosph, Tower, Shaft, Tunnel, Underwater, Balloon.
//
// # Derived Fields
//
// Every event is enriched exactly once after load:
//
//	AverageYield   midpoint of the yield bounds; NaN when either bound is NaN.
//	Decade         (year/10)*10 by integer division: 1974 → 1970, 1980 → 1980.
//	YieldCategory  right-open bins on AverageYield with an open lower bound
//	               at zero:
//
//	  (0, 20)       Low (<20kt)
//	  [20, 150)     Medium (20-150kt)
//	  [150, 1000)   High (150-1000kt)
//	  [1000, ∞)     Very High (>1000kt)
//
//	NaN or non-positive yields receive no category and are excluded from
//	category counts. A yield of exactly 20 is Medium and exactly 150 is High.
//
// The Cold War window used by the insight report is the inclusive year range
// 1947-1991. See [InColdWarWindow].
package domain
