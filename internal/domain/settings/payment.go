package settings

import (
	"errors"
	"strings"
)

var ErrInvalidPixKeyType = errors.New("invalid pix key type")

type PixKeyType string

const (
	PixKeyCPF       PixKeyType = "CPF"
	PixKeyCNPJ      PixKeyType = "CNPJ"
	PixKeyEmail     PixKeyType = "Email"
	PixKeyTelefone  PixKeyType = "Telefone"
	PixKeyAleatoria PixKeyType = "Aleatória"
)

func ParsePixKeyType(s string) (PixKeyType, error) {
	switch t := PixKeyType(s); t {
	case PixKeyCPF, PixKeyCNPJ, PixKeyEmail, PixKeyTelefone, PixKeyAleatoria:
		return t, nil
	default:
		return "", ErrInvalidPixKeyType
	}
}

func (t PixKeyType) String() string {
	return string(t)
}

type PaymentSettings struct {
	PixKey  string
	PixType PixKeyType
}

func DefaultPaymentSettings() PaymentSettings {
	return PaymentSettings{PixType: PixKeyCPF}
}

func NewPaymentSettings(pixKey, pixType string) (PaymentSettings, error) {
	t, err := ParsePixKeyType(pixType)
	if err != nil {
		return PaymentSettings{}, err
	}
	return PaymentSettings{PixKey: strings.TrimSpace(pixKey), PixType: t}, nil
}
