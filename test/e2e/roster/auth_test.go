package roster_test

import (
	"testing"

	"github.com/aussiebroadwan/roster/pkg/rostersdk"
	"github.com/stretchr/testify/require"
)

func TestAuthFlow(t *testing.T) {
	client := rostersdk.NewClient(setupRosterContainer(t))
	session := registerAndLogin(t, client)

	_, err := client.Register(t.Context(), testUsername, "AnotherPass1.")
	assertCode(t, err, rostersdk.CodeDuplicate)

	_, err = client.Login(t.Context(), testUsername, "wrong-password")
	assertCode(t, err, rostersdk.CodeInvalidCredentials)

	_, err = client.Login(t.Context(), testUsername, "wrong")
	assertCode(t, err, rostersdk.CodeInvalidCredentials)

	_, err = client.Login(t.Context(), "nobody", testPassword)
	assertCode(t, err, rostersdk.CodeInvalidCredentials)

	_, err = client.NewSession("garbage").ListOffices(t.Context())
	assertCode(t, err, rostersdk.CodeUnauthorized)

	_, err = session.ListOffices(t.Context())
	require.NoError(t, err)
}
