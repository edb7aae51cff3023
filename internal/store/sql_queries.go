package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-file-vault/models"
)

const (
	createAccount = `
		INSERT INTO accounts (principal, login, password_hash)
		VALUES ($1, $2, $3)
		RETURNING principal, login, password_hash, created_at;`

	findAccountByLogin = `
		SELECT principal, login, password_hash, created_at
		FROM accounts
		WHERE login = $1;`

	createUser = `
		INSERT INTO users (principal, username, username_key)
		VALUES ($1, $2, $3)
		RETURNING created_at;`

	getUser = `
		SELECT u.principal, u.username, r.public_key, u.created_at
		FROM users u
		LEFT JOIN resources r ON r.owner = u.principal
		WHERE u.principal = $1;`
)

const (
	createResource = `
		INSERT INTO resources (owner, state)
		VALUES ($1, 'requested');`

	resourceColumns = `owner, handle, state, reason, attempts, created_at, updated_at`

	getResourceByOwner  = `SELECT ` + resourceColumns + ` FROM resources WHERE owner = $1;`
	getResourceByHandle = `SELECT ` + resourceColumns + ` FROM resources WHERE handle = $1;`

	listRequestedResources = `
		SELECT ` + resourceColumns + `
		FROM resources
		WHERE state = 'requested'
		ORDER BY created_at
		LIMIT $1;`

	countResolvedResources = `SELECT count(*) FROM resources WHERE state = 'ok';`

	markResourceResolved = `
		UPDATE resources
		SET state = 'ok', handle = $2, reason = '', attempts = attempts + 1, updated_at = now()
		WHERE owner = $1 AND state = 'requested';`

	markResourceFailed = `
		UPDATE resources
		SET state = 'failed', reason = $2, attempts = attempts + 1, updated_at = now()
		WHERE owner = $1 AND state = 'requested';`

	restartResourceCreation = `
		UPDATE resources
		SET state = 'requested', reason = '', updated_at = now()
		WHERE owner = $1 AND state = 'failed';`

	getResourcePublicKey = `SELECT public_key FROM resources WHERE handle = $1;`
	setResourcePublicKey = `UPDATE resources SET public_key = $2, updated_at = now() WHERE handle = $1;`
)

const (
	nextFileID = `
		UPDATE resources
		SET next_file_id = next_file_id + 1
		WHERE handle = $1
		RETURNING next_file_id;`

	countUploadedByName = `
		SELECT count(*)
		FROM files
		WHERE resource = $1 AND file_name = $2 AND status <> 'pending';`

	insertFile = `
		INSERT INTO files (resource, file_id, file_name, content_type, status, num_chunks, uploaded_chunks, owner_key, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, 1, $7, $8);`

	insertRequestedFile = `
		INSERT INTO files (resource, file_id, file_name, status, alias, requested_at)
		VALUES ($1, $2, $3, 'pending', $4, now());`

	fileColumns = `file_id, file_name, content_type, status, num_chunks, uploaded_chunks, owner_key, alias, uploader, requested_at, uploaded_at`

	getFile = `SELECT ` + fileColumns + ` FROM files WHERE resource = $1 AND file_id = $2;`

	lockFile = `
		SELECT status, num_chunks
		FROM files
		WHERE resource = $1 AND file_id = $2
		FOR UPDATE;`

	getFileByAlias = `SELECT resource, ` + fileColumns + ` FROM files WHERE alias = $1;`

	listFiles = `SELECT ` + fileColumns + ` FROM files WHERE resource = $1 ORDER BY file_id;`

	claimFile = `
		UPDATE files
		SET content_type = $3, status = $4, num_chunks = $5, uploaded_chunks = 1,
		    owner_key = $6, uploader = $7, alias = NULL, uploaded_at = $8
		WHERE resource = $1 AND file_id = $2;`

	insertChunk = `
		INSERT INTO file_chunks (resource, file_id, chunk_id, size)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT DO NOTHING;`

	advanceUploadedChunks = `
		UPDATE files
		SET uploaded_chunks = uploaded_chunks + 1,
		    status = CASE WHEN uploaded_chunks + 1 = num_chunks THEN 'uploaded' ELSE status END,
		    uploaded_at = CASE WHEN uploaded_chunks + 1 = num_chunks THEN now() ELSE uploaded_at END
		WHERE resource = $1 AND file_id = $2
		RETURNING status;`

	deleteFile = `DELETE FROM files WHERE resource = $1 AND file_id = $2;`
)

const (
	upsertShare = `
		INSERT INTO file_shares (resource, file_id, recipient, wrapped_key)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (resource, file_id, recipient) DO UPDATE SET wrapped_key = EXCLUDED.wrapped_key;`

	getWrappedKey = `
		SELECT wrapped_key
		FROM file_shares
		WHERE resource = $1 AND file_id = $2 AND recipient = $3;`

	listRecipients = `
		SELECT recipient
		FROM file_shares
		WHERE resource = $1 AND file_id = $2
		ORDER BY created_at, recipient;`

	upsertShareIndex = `
		INSERT INTO share_index (resource, owner, file_id, file_name, recipient)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (resource, file_id, recipient) DO UPDATE SET file_name = EXCLUDED.file_name;`

	removeFileFromShareIndex = `DELETE FROM share_index WHERE resource = $1 AND file_id = $2;`

	listShareIndexByRecipient = `
		SELECT resource, owner, file_id, file_name, recipient
		FROM share_index
		WHERE recipient = $1
		ORDER BY owner, resource, file_id;`
)

// buildListUsersQuery selects a page of public users whose case-folded
// username contains key. An empty key matches everybody.
func buildListUsersQuery(key string, offset, limit int) (string, []any, error) {
	q := psql.
		Select("u.principal", "u.username", "r.public_key").
		From("users u").
		LeftJoin("resources r ON r.owner = u.principal").
		OrderBy("u.username_key").
		Offset(uint64(offset)).
		Limit(uint64(limit))

	if key != "" {
		q = q.Where(sq.Like{"u.username_key": "%" + key + "%"})
	}

	return q.ToSql()
}

func buildCountUsersQuery(key string) (string, []any, error) {
	q := psql.Select("count(*)").From("users u")
	if key != "" {
		q = q.Where(sq.Like{"u.username_key": "%" + key + "%"})
	}

	return q.ToSql()
}

// buildFindUsersQuery selects the public view of every listed principal.
func buildFindUsersQuery(principals []models.Principal) (string, []any, error) {
	return psql.
		Select("u.principal", "u.username", "r.public_key").
		From("users u").
		LeftJoin("resources r ON r.owner = u.principal").
		Where(sq.Eq{"u.principal": principalStrings(principals)}).
		OrderBy("u.username_key").
		ToSql()
}

func buildDeleteSharesQuery(resource models.ResourceHandle, fileID models.FileID, recipients []models.Principal) (string, []any, error) {
	return psql.
		Delete("file_shares").
		Where(sq.Eq{"resource": resource.String(), "file_id": uint64(fileID)}).
		Where(sq.Eq{"recipient": principalStrings(recipients)}).
		ToSql()
}

func buildDeleteShareIndexQuery(resource models.ResourceHandle, fileID models.FileID, recipients []models.Principal) (string, []any, error) {
	return psql.
		Delete("share_index").
		Where(sq.Eq{"resource": resource.String(), "file_id": uint64(fileID)}).
		Where(sq.Eq{"recipient": principalStrings(recipients)}).
		ToSql()
}

// buildListRecipientsQuery selects the recipients of every listed file of a
// resource, used to fill FileRecord.SharedWith in one round trip.
func buildListRecipientsQuery(resource models.ResourceHandle, fileIDs []models.FileID) (string, []any, error) {
	ids := make([]uint64, 0, len(fileIDs))
	for _, id := range fileIDs {
		ids = append(ids, uint64(id))
	}

	return psql.
		Select("file_id", "recipient").
		From("file_shares").
		Where(sq.Eq{"resource": resource.String()}).
		Where(sq.Eq{"file_id": ids}).
		OrderBy("file_id", "created_at", "recipient").
		ToSql()
}

func principalStrings(principals []models.Principal) []string {
	out := make([]string, 0, len(principals))
	for _, p := range principals {
		out = append(out, p.String())
	}
	return out
}
