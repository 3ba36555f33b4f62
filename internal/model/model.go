// Package model contains the domain records shared by the HTTP, service and
// repository layers. No business logic and no database tags here.
package model
