//go:build bptreedebug

package bptree

const debugEnabled = true
