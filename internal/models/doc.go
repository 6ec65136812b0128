// Package models defines the domain entities of the rental console and the persistence interfaces.
//
// Entities:
//   - [Agency] : a branch where vehicles are parked
//   - [Vehicle] : a rentable unit with a daily rate, parked at one agency
//   - [Customer] : an individual (CPF) or company (CNPJ)
//   - [Rental] : a vehicle handed to a customer, open until returned
//
// All entities embed [Entity] and implement [Model], providing ID, sequence, timestamps, validation and soft delete
// support. The Repository[T] interface defines standard CRUD operations for database access.
//
// Money is [decimal.Decimal] from shopspring/decimal; billing counts started 24h periods, never less than one.
package models
