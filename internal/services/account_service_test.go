package services

import (
	"testing"

	"clients_directory/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAccountService(clientRepo *fakeClientRepo, accountRepo *fakeAccountRepo) AccountService {
	return &accountService{accountRepo: accountRepo, clientRepo: clientRepo}
}

func seedClient(t *testing.T, clientRepo *fakeClientRepo) int64 {
	t.Helper()
	client := &models.Client{FirstName: "Ana", LastName: "Beridze"}
	id, err := clientRepo.CreateClient(nil, client)
	require.NoError(t, err)
	return id
}

func TestCreateAccount(t *testing.T) {
	clientRepo := newFakeClientRepo(nil)
	accountRepo := newFakeAccountRepo(nil)
	svc := newTestAccountService(clientRepo, accountRepo)
	clientID := seedClient(t, clientRepo)

	account, err := svc.CreateAccount(clientID, CreateAccountRequest{Type: "Savings", Currency: "USD"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), account.ID)
	assert.Equal(t, clientID, account.ClientID)
	assert.Equal(t, models.AccountTypeSavings, account.Type)
	assert.Equal(t, models.CurrencyUSD, account.Currency)
	assert.Equal(t, models.AccountStatusActive, account.Status)
}

func TestCreateAccountClientNotFound(t *testing.T) {
	svc := newTestAccountService(newFakeClientRepo(nil), newFakeAccountRepo(nil))

	_, err := svc.CreateAccount(404, CreateAccountRequest{Type: "Current", Currency: "GEL"})
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestCreateAccountValidatesEnums(t *testing.T) {
	clientRepo := newFakeClientRepo(nil)
	svc := newTestAccountService(clientRepo, newFakeAccountRepo(nil))
	clientID := seedClient(t, clientRepo)

	_, err := svc.CreateAccount(clientID, CreateAccountRequest{Type: "Checking", Currency: "JPY"})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Len(t, vErr.Violations, 2)
	assert.Equal(t, "type", vErr.Violations[0].Field)
	assert.Equal(t, "currency", vErr.Violations[1].Field)
}

func TestGetAccountsByClient(t *testing.T) {
	clientRepo := newFakeClientRepo(nil)
	accountRepo := newFakeAccountRepo(nil)
	svc := newTestAccountService(clientRepo, accountRepo)
	clientID := seedClient(t, clientRepo)

	_, err := svc.CreateAccount(clientID, CreateAccountRequest{Type: "Current", Currency: "GEL"})
	require.NoError(t, err)
	_, err = svc.CreateAccount(clientID, CreateAccountRequest{Type: "Accrual", Currency: "EUR"})
	require.NoError(t, err)

	accounts, err := svc.GetAccountsByClient(clientID)
	require.NoError(t, err)
	assert.Len(t, accounts, 2)
}

// A client with zero accounts and an absent client are indistinguishable
// through the listing operation; both yield ErrNoAccountsFound.
func TestGetAccountsByClientEmpty(t *testing.T) {
	clientRepo := newFakeClientRepo(nil)
	svc := newTestAccountService(clientRepo, newFakeAccountRepo(nil))
	clientID := seedClient(t, clientRepo)

	_, err := svc.GetAccountsByClient(clientID)
	assert.ErrorIs(t, err, ErrNoAccountsFound)

	_, err = svc.GetAccountsByClient(404)
	assert.ErrorIs(t, err, ErrNoAccountsFound)
}

func TestCloseAccountTwice(t *testing.T) {
	clientRepo := newFakeClientRepo(nil)
	accountRepo := newFakeAccountRepo(nil)
	svc := newTestAccountService(clientRepo, accountRepo)
	clientID := seedClient(t, clientRepo)

	created, err := svc.CreateAccount(clientID, CreateAccountRequest{Type: "Savings", Currency: "USD"})
	require.NoError(t, err)

	closed, err := svc.CloseAccount(created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AccountStatusClosed, closed.Status)

	_, err = svc.CloseAccount(created.ID)
	assert.ErrorIs(t, err, models.ErrAccountAlreadyClosed)

	stored, err := accountRepo.GetAccountByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AccountStatusClosed, stored.Status, "status stays Closed despite the failed second call")
}

func TestCloseAccountNotFound(t *testing.T) {
	svc := newTestAccountService(newFakeClientRepo(nil), newFakeAccountRepo(nil))

	_, err := svc.CloseAccount(404)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

// Full client and account lifecycle in one pass.
func TestClientAccountLifecycle(t *testing.T) {
	clientRepo := newFakeClientRepo(nil)
	accountRepo := newFakeAccountRepo(nil)
	clientSvc := newTestClientService(clientRepo, accountRepo, NewImageService(&fakeBlobStore{}))
	accountSvc := newTestAccountService(clientRepo, accountRepo)

	client, err := clientSvc.CreateClient(validCreateClientRequest(), nil)
	require.NoError(t, err)
	require.NotZero(t, client.ID)
	require.Empty(t, client.Accounts)

	account, err := accountSvc.CreateAccount(client.ID, CreateAccountRequest{Type: "Savings", Currency: "USD"})
	require.NoError(t, err)
	require.Equal(t, models.AccountStatusActive, account.Status)

	closed, err := accountSvc.CloseAccount(account.ID)
	require.NoError(t, err)
	require.Equal(t, models.AccountStatusClosed, closed.Status)

	_, err = accountSvc.CloseAccount(account.ID)
	require.ErrorIs(t, err, models.ErrAccountAlreadyClosed)
}
