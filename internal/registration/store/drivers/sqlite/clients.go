package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/oidcreg/internal/registration/domain"
)

const clientColumns = `client_id, secret_hash, name, service_id, scopes, subject_type,
	subject_strategy, sector_identifier_uri, jwks_uri, sign_id_token, logout_url,
	description, token_endpoint_auth_method, released_attributes,
	dynamically_registered, evaluation_order, created_at`

const insertClient = `INSERT INTO registered_clients (` + clientColumns + `)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

const getClientByID = `SELECT ` + clientColumns + `
FROM registered_clients WHERE client_id = ?`

const listClientsByServiceID = `SELECT ` + clientColumns + `
FROM registered_clients WHERE service_id = ?
ORDER BY evaluation_order ASC, created_at ASC`

const listClients = `SELECT ` + clientColumns + `
FROM registered_clients ORDER BY created_at DESC`

type clientsRepo struct {
	q querier
}

func (r *clientsRepo) SaveClient(ctx context.Context, c domain.RegisteredClient) error {
	createdAt := c.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := r.q.ExecContext(ctx, insertClient,
		c.ClientID,
		c.SecretHash,
		c.Name,
		c.ServiceID,
		joinFields(c.Scopes),
		c.SubjectType,
		string(c.SubjectStrategy),
		mapStringNull(c.SectorIdentifierURI),
		mapStringNull(c.JWKSURI),
		c.SignIDToken,
		c.LogoutURL,
		c.Description,
		c.TokenEndpointAuthMethod,
		joinFields(c.ReleasedAttributes),
		c.DynamicallyRegistered,
		c.EvaluationOrder,
		formatTime(createdAt),
	)
	return mapConstraint(err)
}

func (r *clientsRepo) GetClientByID(ctx context.Context, clientID string) (domain.RegisteredClient, error) {
	c, err := scanClient(r.q.QueryRowContext(ctx, getClientByID, clientID))
	if err != nil {
		return domain.RegisteredClient{}, mapNotFound(err)
	}
	return c, nil
}

func (r *clientsRepo) ListClientsByServiceID(ctx context.Context, serviceID string) ([]domain.RegisteredClient, error) {
	return r.list(ctx, listClientsByServiceID, serviceID)
}

func (r *clientsRepo) ListClients(ctx context.Context) ([]domain.RegisteredClient, error) {
	return r.list(ctx, listClients)
}

func (r *clientsRepo) list(ctx context.Context, query string, args ...any) ([]domain.RegisteredClient, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []domain.RegisteredClient
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (domain.RegisteredClient, error) {
	var (
		c                   domain.RegisteredClient
		scopes, released    string
		strategy, createdAt string
		sectorURI, jwksURI  sql.NullString
	)

	err := row.Scan(
		&c.ClientID,
		&c.SecretHash,
		&c.Name,
		&c.ServiceID,
		&scopes,
		&c.SubjectType,
		&strategy,
		&sectorURI,
		&jwksURI,
		&c.SignIDToken,
		&c.LogoutURL,
		&c.Description,
		&c.TokenEndpointAuthMethod,
		&released,
		&c.DynamicallyRegistered,
		&c.EvaluationOrder,
		&createdAt,
	)
	if err != nil {
		return domain.RegisteredClient{}, err
	}

	c.Scopes = splitAndFilter(scopes)
	c.ReleasedAttributes = splitAndFilter(released)
	c.SubjectStrategy = domain.SubjectStrategy(strategy)
	c.SectorIdentifierURI = mapNullString(sectorURI)
	c.JWKSURI = mapNullString(jwksURI)
	c.CreatedAt = parseTime(createdAt)
	return c, nil
}
