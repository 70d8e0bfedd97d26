package types_test

import (
	"fmt"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/dataprep/pkg/domain/types"
)

func TestSecretsAreHidden(t *testing.T) {
	secret := types.AWSSecretAccessKey("wJalrXUtnFEMI")
	token := types.AWSSessionToken("FwoGZXIvYXdzE")

	gt.V(t, fmt.Sprint(secret)).Equal("***********")
	gt.V(t, secret.LogValue().String()).Equal("***********")
	gt.V(t, fmt.Sprint(token)).Equal("***********")
	gt.V(t, token.LogValue().String()).Equal("***********")
}

func TestNewRunID(t *testing.T) {
	id1 := types.NewRunID()
	id2 := types.NewRunID()
	gt.V(t, len(id1.String())).Equal(36)
	gt.V(t, id1).NotEqual(id2)
}
