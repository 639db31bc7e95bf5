package config

var (
	StandardizeJSONC = standardizeJSONC
	MatchGlob        = matchGlob
)
