// Package mocks provide a pregenerated gomock file for working with tests.
// The primary goal for this pkg is to test rainy paths in your view layer code,
// which is more complicated to properly set up using real presenter implementations.
//
package mocks

//go:generate mockgen -package mocks -destination Presentable.go github.com/adamluzsi/presentable Presenter,SelfPresenting
//
