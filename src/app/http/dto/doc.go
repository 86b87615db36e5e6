// Package dto contains Data Transfer Objects for HTTP responses.
//
// DTOs are separate from domain entities to control the JSON field names
// exposed by the API. Request bodies are not modelled here: they are bound
// into a domain.Payload so the domain parsers see absent and mistyped fields.
//
// Naming convention:
//   - Response types: <Resource>Response (e.g., AddedThreadResponse)
//   - Conversion: (<Resource>Response) FromDomain(*domain.X) <Resource>Response
package dto
