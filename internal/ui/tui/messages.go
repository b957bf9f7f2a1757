package tui

import "github.com/aalvaropc/railinfo/internal/usecase"

type lookupDoneMsg struct {
	res    usecase.InfoResult
	report string
	err    error
}

type mapOpenedMsg struct {
	code string
	url  string
	err  error
}
