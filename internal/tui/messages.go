package tui

import "github.com/m-hosseinpour/bidi-markdown/models"

type pushDoneMsg struct {
	result models.SyncResult
	err    error
}

type pullDoneMsg struct {
	result models.SyncResult
	err    error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
