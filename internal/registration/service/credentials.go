package service

// CredentialGenerator produces opaque, unguessable strings. The service uses
// two independent instances, one for client ids and one for client secrets,
// and both must be safe for concurrent use.
// cryptox.RandomStringGenerator is the production implementation.
type CredentialGenerator interface {
	Next() (string, error)
}
