// Package match scores identifier similarity for diagnostics. When a
// manifest or directive names something that does not exist, the closest
// existing name usually reveals the typo, so error messages carry it as a
// suggestion.
package match
