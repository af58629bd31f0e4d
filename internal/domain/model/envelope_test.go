package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelope_Ok(t *testing.T) {
	admin := Admin{ID: 1, Username: "admin"}

	assert.True(t, Envelope[Admin]{Success: true, Data: &admin}.Ok())
	assert.False(t, Envelope[Admin]{Success: true}.Ok(), "success without data is not ok")
	assert.False(t, Envelope[Admin]{Success: false, Data: &admin}.Ok())
}

func TestEnvelope_ErrorMessage(t *testing.T) {
	assert.Equal(t, "credenciais inválidas", Envelope[Admin]{Error: "credenciais inválidas"}.ErrorMessage())
	assert.Equal(t, "sessão expirada", Envelope[Admin]{Message: "sessão expirada"}.ErrorMessage())
	assert.Equal(t, "erro", Envelope[Admin]{Error: "erro", Message: "msg"}.ErrorMessage(), "error wins over message")
	assert.Equal(t, "", Envelope[Admin]{}.ErrorMessage())
}

func TestFail(t *testing.T) {
	env := Fail[Loja]("sem conexão")

	assert.False(t, env.Success)
	assert.Nil(t, env.Data)
	assert.Equal(t, "sem conexão", env.ErrorMessage())
}

// The API wraps list responses in the same envelope shape; the decoded
// slice must land in Data untouched.
func TestEnvelope_DecodeList(t *testing.T) {
	body := `{"success":true,"data":[{"id":1,"nome":"Loja Centro","ativo":true},{"id":2,"nome":"Loja Norte","ativo":false}]}`

	var env Envelope[[]Loja]
	require.NoError(t, json.Unmarshal([]byte(body), &env))

	require.True(t, env.Ok())
	require.Len(t, *env.Data, 2)
	assert.Equal(t, "Loja Centro", (*env.Data)[0].Nome)
	assert.False(t, (*env.Data)[1].Ativo)
}
