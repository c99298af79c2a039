package domain

import (
	"errors"
	"strings"
)

// AccountKey identifica uma das contas do TikTok Shop acompanhadas
type AccountKey string

const (
	AccountLolaModas    AccountKey = "lola_modas"
	AccountLalaDaroca   AccountKey = "lala_daroca"
	AccountDudaModas    AccountKey = "duda_modas"
	AccountJuDourado    AccountKey = "ju_dourado"
	AccountMariaDourado AccountKey = "maria_dourado"

	// AllAccounts representa o filtro "Todas as Contas"
	AllAccounts AccountKey = "all"
)

var ErrUnknownAccount = errors.New("conta desconhecida")

type Account struct {
	Key    AccountKey `json:"key"`
	Handle string     `json:"handle"`
}

// Accounts é a tabela única de contas. A ordem aqui define a ordem das colunas,
// dos gráficos e o desempate do ranking.
var Accounts = []Account{
	{Key: AccountLolaModas, Handle: "@lolamodas.ia"},
	{Key: AccountLalaDaroca, Handle: "@laladaroca"},
	{Key: AccountDudaModas, Handle: "@dudamodas05"},
	{Key: AccountJuDourado, Handle: "@judourado.shop"},
	{Key: AccountMariaDourado, Handle: "@mariadourado.shop"},
}

// AccountKeys retorna as chaves na ordem da tabela de contas
func AccountKeys() []AccountKey {
	keys := make([]AccountKey, 0, len(Accounts))
	for _, account := range Accounts {
		keys = append(keys, account.Key)
	}
	return keys
}

func (k AccountKey) IsAll() bool {
	return k == AllAccounts
}

// Handle retorna o @ exibido para a conta, ou vazio se a chave não existir
func (k AccountKey) Handle() string {
	for _, account := range Accounts {
		if account.Key == k {
			return account.Handle
		}
	}
	return ""
}

// ParseAccount aceita "all" (ou vazio), a chave interna ou o @ da conta
func ParseAccount(value string) (AccountKey, error) {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, string(AllAccounts)) {
		return AllAccounts, nil
	}

	for _, account := range Accounts {
		if value == string(account.Key) || strings.EqualFold(value, account.Handle) {
			return account.Key, nil
		}
	}

	return "", ErrUnknownAccount
}
