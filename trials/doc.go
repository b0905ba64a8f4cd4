// SPDX-License-Identifier: MIT

// Package trials measures the attack's success rate over random instances.
//
// Run draws Count agreeing instances from per-trial seeds derived from
// Config.Seed, attacks each one and classifies the result:
//
//	OK         the recovered key equals the parties' key
//	FAILED     the attack produced no key
//	INCORRECT  the attack produced a key that is not the parties' key
//
// Trials run on Config.Workers goroutines. Records are stored by trial index
// and OnRecord is invoked from Run's goroutine in index order, so output is
// identical for any worker count.
package trials
