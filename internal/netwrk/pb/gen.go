// Package pb holds the generated protobuf types for the game protocol.
package pb

//go:generate protoc --go_out=. --go_opt=paths=source_relative skyball.proto
