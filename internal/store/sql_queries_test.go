// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-file-vault/models"
)

func Test_buildListUsersQuery_WithKey(t *testing.T) {
	query, args, err := buildListUsersQuery("ali", 20, 10)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "from users u")
	require.Contains(t, q, "left join resources r on r.owner = u.principal")
	require.Contains(t, q, "u.username_key like $1")
	require.Contains(t, q, "order by u.username_key")
	require.Contains(t, q, "limit 10")
	require.Contains(t, q, "offset 20")

	require.Equal(t, []any{"%ali%"}, args)
}

func Test_buildListUsersQuery_WithoutKey(t *testing.T) {
	query, args, err := buildListUsersQuery("", 0, 100)
	require.NoError(t, err)

	require.NotContains(t, strings.ToLower(query), "where")
	require.Empty(t, args)
}

func Test_buildCountUsersQuery(t *testing.T) {
	query, args, err := buildCountUsersQuery("bob")
	require.NoError(t, err)

	require.Contains(t, strings.ToLower(query), "select count(*) from users u where u.username_key like $1")
	require.Equal(t, []any{"%bob%"}, args)
}

func Test_buildFindUsersQuery(t *testing.T) {
	query, args, err := buildFindUsersQuery([]models.Principal{"p1", "p2"})
	require.NoError(t, err)

	// squirrel expands a slice into IN ($1,$2)
	require.Contains(t, query, "u.principal IN ($1,$2)")
	require.Equal(t, []any{"p1", "p2"}, args)
}

func Test_buildDeleteSharesQuery(t *testing.T) {
	query, args, err := buildDeleteSharesQuery(testResource, 3, []models.Principal{"r1", "r2"})
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.True(t, strings.HasPrefix(q, "delete from file_shares where"))
	require.Contains(t, q, "recipient in ($3,$4)")
	require.Len(t, args, 4)
	require.Contains(t, args, testResource.String())
	require.Contains(t, args, uint64(3))
}

func Test_buildDeleteShareIndexQuery(t *testing.T) {
	query, args, err := buildDeleteShareIndexQuery(testResource, 3, []models.Principal{"r1"})
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(strings.ToLower(query), "delete from share_index where"))
	require.Len(t, args, 3)
}

func Test_buildListRecipientsQuery(t *testing.T) {
	query, args, err := buildListRecipientsQuery(testResource, []models.FileID{1, 2, 5})
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "from file_shares")
	require.Contains(t, q, "file_id in ($2,$3,$4)")
	require.Contains(t, q, "order by file_id, created_at, recipient")
	require.Equal(t, []any{testResource.String(), uint64(1), uint64(2), uint64(5)}, args)
}
