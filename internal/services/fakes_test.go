package services

import (
	"fmt"

	"clients_directory/internal/models"
	"clients_directory/internal/repositories"
)

// fakeClientRepo is an in-memory stand-in for the client repository.
type fakeClientRepo struct {
	clients      map[int64]models.Client
	nextID       int64
	searchResult []models.Client
	searchTotal  int
	calls        *[]string
	failOnSearch error
}

func newFakeClientRepo(calls *[]string) *fakeClientRepo {
	return &fakeClientRepo{clients: map[int64]models.Client{}, calls: calls}
}

func (f *fakeClientRepo) record(call string) {
	if f.calls != nil {
		*f.calls = append(*f.calls, call)
	}
}

func (f *fakeClientRepo) CreateClient(_ repositories.SQLExecutor, client *models.Client) (int64, error) {
	f.nextID++
	client.ID = f.nextID
	f.clients[client.ID] = *client
	return client.ID, nil
}

func (f *fakeClientRepo) GetClientByID(id int64) (*models.Client, error) {
	client, ok := f.clients[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := client
	return &copied, nil
}

func (f *fakeClientRepo) GetClients(req models.ClientSearchRequest) ([]models.Client, int, error) {
	if f.failOnSearch != nil {
		return nil, 0, f.failOnSearch
	}
	return f.searchResult, f.searchTotal, nil
}

func (f *fakeClientRepo) UpdateClient(_ repositories.SQLExecutor, client *models.Client) error {
	if _, ok := f.clients[client.ID]; !ok {
		return repositories.ErrNotFound
	}
	f.clients[client.ID] = *client
	return nil
}

func (f *fakeClientRepo) DeleteClient(_ repositories.SQLExecutor, id int64) error {
	f.record(fmt.Sprintf("delete client %d", id))
	if _, ok := f.clients[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.clients, id)
	return nil
}

// fakeAccountRepo is an in-memory stand-in for the account repository.
type fakeAccountRepo struct {
	accounts map[int64]models.Account
	nextID   int64
	calls    *[]string
}

func newFakeAccountRepo(calls *[]string) *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[int64]models.Account{}, calls: calls}
}

func (f *fakeAccountRepo) record(call string) {
	if f.calls != nil {
		*f.calls = append(*f.calls, call)
	}
}

func (f *fakeAccountRepo) CreateAccount(_ repositories.SQLExecutor, account *models.Account) (int64, error) {
	f.nextID++
	account.ID = f.nextID
	f.accounts[account.ID] = *account
	return account.ID, nil
}

func (f *fakeAccountRepo) GetAccountByID(id int64) (*models.Account, error) {
	account, ok := f.accounts[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := account
	return &copied, nil
}

func (f *fakeAccountRepo) GetAccountsByClientID(clientID int64) ([]models.Account, error) {
	accounts := []models.Account{}
	for id := int64(1); id <= f.nextID; id++ {
		if account, ok := f.accounts[id]; ok && account.ClientID == clientID {
			accounts = append(accounts, account)
		}
	}
	return accounts, nil
}

func (f *fakeAccountRepo) UpdateAccountStatus(_ repositories.SQLExecutor, id int64, status models.AccountStatus) error {
	account, ok := f.accounts[id]
	if !ok {
		return repositories.ErrNotFound
	}
	account.Status = status
	f.accounts[id] = account
	return nil
}

func (f *fakeAccountRepo) DeleteAccountsByClientID(_ repositories.SQLExecutor, clientID int64) error {
	f.record(fmt.Sprintf("delete accounts of client %d", clientID))
	for id, account := range f.accounts {
		if account.ClientID == clientID {
			delete(f.accounts, id)
		}
	}
	return nil
}

// fakeBlobStore records puts and hands back deterministic references.
type fakeBlobStore struct {
	puts []string
	err  error
}

func (f *fakeBlobStore) Put(data []byte, contentType, originalName string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.puts = append(f.puts, originalName)
	return "/profile-images/blob-" + originalName, nil
}

// newTestClientService wires a client service onto the fakes with a
// transaction runner that needs no database.
func newTestClientService(clientRepo *fakeClientRepo, accountRepo *fakeAccountRepo, images ImageService) *clientService {
	s := &clientService{
		clientRepo:  clientRepo,
		accountRepo: accountRepo,
		images:      images,
	}
	s.runInTx = func(fn func(tx repositories.SQLExecutor) error) error {
		return fn(nil)
	}
	return s
}

func validCreateClientRequest() CreateClientRequest {
	return CreateClientRequest{
		FirstName:            "Ana",
		LastName:             "Beridze",
		Gender:               "Female",
		DocumentID:           "12345678901",
		PhoneNumber:          "512345678",
		LegalAddressCountry:  "Georgia",
		LegalAddressCity:     "Tbilisi",
		LegalAddressLine:     "Rustaveli Ave 12",
		ActualAddressCountry: "Georgia",
		ActualAddressCity:    "Batumi",
		ActualAddressLine:    "Chavchavadze St 5",
	}
}

func strPtr(s string) *string {
	return &s
}
