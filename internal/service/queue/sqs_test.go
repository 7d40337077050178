package queue

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingrain94/digital-menu-api/internal/config"
	"github.com/kingrain94/digital-menu-api/internal/domain"
)

type fakeSQS struct {
	sent      []*sqs.SendMessageInput
	deleted   []*sqs.DeleteMessageInput
	receive   *sqs.ReceiveMessageOutput
	sendError error
}

func (f *fakeSQS) SendMessage(_ context.Context, params *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	if f.sendError != nil {
		return nil, f.sendError
	}
	f.sent = append(f.sent, params)
	return &sqs.SendMessageOutput{}, nil
}

func (f *fakeSQS) ReceiveMessage(_ context.Context, _ *sqs.ReceiveMessageInput, _ ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
	return f.receive, nil
}

func (f *fakeSQS) DeleteMessage(_ context.Context, params *sqs.DeleteMessageInput, _ ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error) {
	f.deleted = append(f.deleted, params)
	return &sqs.DeleteMessageOutput{}, nil
}

func newService(client SQSAPI) *SQSService {
	return NewSQSService(client, &config.SQSConfig{IndexQueueURL: "index-url", ExportQueueURL: "export-url"})
}

func TestSQSService_SendIndexProductMessage(t *testing.T) {
	client := &fakeSQS{}
	svc := newService(client)

	require.NoError(t, svc.SendIndexProductMessage(context.Background(), &domain.Product{ID: "p1", TenantID: "t1"}))

	require.Len(t, client.sent, 1)
	assert.Equal(t, "index-url", aws.ToString(client.sent[0].QueueUrl))

	var msg Message
	require.NoError(t, json.Unmarshal([]byte(aws.ToString(client.sent[0].MessageBody)), &msg))
	assert.Equal(t, MessageTypeIndexProduct, msg.Type)
	assert.Equal(t, "t1", msg.TenantID)
	assert.Equal(t, "p1", msg.Product.ID)
}

func TestSQSService_SendExportMessage(t *testing.T) {
	client := &fakeSQS{}
	svc := newService(client)

	require.NoError(t, svc.SendExportMessage(context.Background(), "t1", "menus/t1/k.json"))

	require.Len(t, client.sent, 1)
	assert.Equal(t, "export-url", aws.ToString(client.sent[0].QueueUrl))
	var msg Message
	require.NoError(t, json.Unmarshal([]byte(aws.ToString(client.sent[0].MessageBody)), &msg))
	assert.Equal(t, MessageTypeExportMenu, msg.Type)
	assert.Equal(t, "menus/t1/k.json", msg.ExportKey)
}

func TestSQSService_SendError(t *testing.T) {
	svc := newService(&fakeSQS{sendError: errors.New("throttled")})

	err := svc.SendExportMessage(context.Background(), "t1", "menus/t1/k.json")
	assert.ErrorContains(t, err, "throttled")
}

func TestSQSService_ReceiveMessages_UndecodableBodyHasNoType(t *testing.T) {
	client := &fakeSQS{receive: &sqs.ReceiveMessageOutput{Messages: []types.Message{
		{Body: aws.String(`{"type":"EXPORT_MENU","tenant_id":"t1","export_key":"menus/t1/k.json"}`), ReceiptHandle: aws.String("r1")},
		{Body: aws.String(`not json`), ReceiptHandle: aws.String("r2")},
	}}}
	svc := newService(client)

	messages, err := svc.ReceiveMessages(context.Background(), "export-url", 10, 0)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, MessageTypeExportMenu, messages[0].Message.Type)
	assert.Equal(t, "r1", aws.ToString(messages[0].ReceiptHandle))
	assert.Empty(t, messages[1].Message.Type)

	require.NoError(t, svc.DeleteMessage(context.Background(), "export-url", messages[1].ReceiptHandle))
	require.Len(t, client.deleted, 1)
	assert.Equal(t, "r2", aws.ToString(client.deleted[0].ReceiptHandle))
}
