// Package pb holds the protobuf messages exchanged with the flock actor.
package pb

//go:generate protoc --go_out=. --go_opt=paths=source_relative flock.proto
