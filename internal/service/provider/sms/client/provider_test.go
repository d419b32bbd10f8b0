package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAliyunSMS_SendInvalid(t *testing.T) {
	t.Parallel()

	cli, err := NewAliyunSMS("cn-hangzhou", "ak", "sk", "SMS_0001")
	require.NoError(t, err)
	assert.Equal(t, "SMS_0001", cli.templateCode)

	_, err = cli.Send(t.Context(), SendReq{SignName: "RideCo", Message: "hi"})
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestTencentCloudSMS_SendInvalid(t *testing.T) {
	t.Parallel()

	cli, err := NewTencentCloudSMS("ap-guangzhou", "sid", "skey", "1400000000", "100001")
	require.NoError(t, err)
	assert.Equal(t, "1400000000", *cli.appID)
	assert.Equal(t, "100001", *cli.templateID)

	_, err = cli.Send(t.Context(), SendReq{SignName: "RideCo", Message: "hi"})
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestStringValue(t *testing.T) {
	t.Parallel()
	s := "Ok"
	assert.Equal(t, "Ok", stringValue(&s))
	assert.Equal(t, "", stringValue(nil))
}
