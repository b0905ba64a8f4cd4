// Package tropix is a cryptanalysis toolkit for the key exchange built on
// max-times and min-times matrix algebras.
//
// The protocol publishes n×n integer matrices M, N, X. Each party keeps a
// max-times polynomial and a min-times polynomial and sends
//
//	(p(M) ⊗ X) ⊛ t(N)
//
// where ⊗ is the max-times and ⊛ the min-times matrix product. tropix
// recovers the shared key from the public messages alone by reconstructing
// equivalent polynomials with a bounded, pruned search.
//
// Under the hood, everything is organized under these subpackages:
//
//	semiring/  - Scalar (big integer or Inf) and the MaxTimes/MinTimes semirings
//	matrix/    - immutable square matrices: sum, product, power, exact ratios
//	poly/      - polynomials with leading-first coefficients, evaluation on matrices
//	protocol/  - instances, the triple product, seeded instance generator
//	attack/    - polynomial reconstruction search and key recovery
//	trials/    - concurrent success-rate experiments
//	report/    - JSON and go-echarts HTML reports
//
// The cmd/checkattack command runs an experiment from the command line:
//
//	go run ./cmd/checkattack -count 100 -size 5 -d_bound 5 -c_bound 1000 -p_bound 100 -t_bound 100
//
// Quick example:
//
//	res, err := attack.Attack(m, n, x, a, b, attack.DefaultOptions())
//	if err != nil { … }
//	if res.Outcome == attack.Recovered {
//		fmt.Print(res.Key)
//	}
package tropix
