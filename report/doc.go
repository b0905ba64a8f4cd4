// SPDX-License-Identifier: MIT

// Package report renders trial summaries as JSON or as a go-echarts HTML page.
package report
