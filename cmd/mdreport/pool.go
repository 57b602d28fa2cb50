package main

import (
	"context"
	"fmt"

	mdreport "github.com/alnah/go-mdreport"
)

// CLIConverter is the interface for a single conversion backend.
type CLIConverter interface {
	Convert(ctx context.Context, input mdreport.Input) (*mdreport.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*mdreport.Converter)(nil)

// Pool abstracts converter pool operations for testability.
type Pool interface {
	Acquire() (CLIConverter, error)
	Release(CLIConverter)
	Size() int
	Close() error
}

// poolAdapter exposes a *mdreport.ConverterPool as a Pool.
type poolAdapter struct {
	pool *mdreport.ConverterPool
}

// newPool creates the production pool.
func newPool(size int, opts ...mdreport.Option) Pool {
	return &poolAdapter{pool: mdreport.NewConverterPool(size, opts...)}
}

func (a *poolAdapter) Acquire() (CLIConverter, error) {
	conv, err := a.pool.Acquire()
	if err != nil {
		return nil, err
	}
	return conv, nil
}

func (a *poolAdapter) Release(c CLIConverter) {
	conv, ok := c.(*mdreport.Converter)
	if !ok {
		panic(fmt.Sprintf("poolAdapter.Release: expected *mdreport.Converter, got %T", c))
	}
	a.pool.Release(conv)
}

func (a *poolAdapter) Size() int {
	return a.pool.Size()
}

func (a *poolAdapter) Close() error {
	return a.pool.Close()
}
