// Package http implements the HTTP transport of the vault server.
//
// It exposes the identity, directory and storage resource routes. Request
// tracing, access logging, compression and authentication are handled in this
// package before requests are delegated to the service layer. Domain outcomes
// travel as tagged JSON responses with status 200; error statuses are reserved
// for bad input, access failures and infrastructure errors.
package http
