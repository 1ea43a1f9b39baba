package notification_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DanielPopoola/ticketing-engine/internal/infrastructure/notification"
	"github.com/DanielPopoola/ticketing-engine/internal/mocks"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCachedEmailSettings_Hit(t *testing.T) {
	db, rmock := redismock.NewClientMock()
	source := mocks.NewMockEmailSettings(t)
	settings := notification.NewCachedEmailSettings(db, source, time.Hour, discardLogger())

	rmock.ExpectGet(notification.SettingsKey).SetVal("0")

	enabled, err := settings.SendEmails(context.Background())

	require.NoError(t, err)
	assert.False(t, enabled)
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestCachedEmailSettings_MissLoadsAndCaches(t *testing.T) {
	db, rmock := redismock.NewClientMock()
	source := mocks.NewMockEmailSettings(t)
	settings := notification.NewCachedEmailSettings(db, source, time.Hour, discardLogger())

	rmock.ExpectGet(notification.SettingsKey).RedisNil()
	source.EXPECT().SendEmails(mock.Anything).Return(true, nil).Once()
	rmock.ExpectSet(notification.SettingsKey, "1", time.Hour).SetVal("OK")

	enabled, err := settings.SendEmails(context.Background())

	require.NoError(t, err)
	assert.True(t, enabled)
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestCachedEmailSettings_RedisDownFallsBack(t *testing.T) {
	db, rmock := redismock.NewClientMock()
	source := mocks.NewMockEmailSettings(t)
	settings := notification.NewCachedEmailSettings(db, source, time.Hour, discardLogger())

	rmock.ExpectGet(notification.SettingsKey).SetErr(errors.New("connection refused"))
	source.EXPECT().SendEmails(mock.Anything).Return(false, nil).Once()
	rmock.ExpectSet(notification.SettingsKey, "0", time.Hour).SetErr(errors.New("connection refused"))

	enabled, err := settings.SendEmails(context.Background())

	require.NoError(t, err)
	assert.False(t, enabled)
}

func TestCachedEmailSettings_SourceError(t *testing.T) {
	db, rmock := redismock.NewClientMock()
	source := mocks.NewMockEmailSettings(t)
	settings := notification.NewCachedEmailSettings(db, source, time.Hour, discardLogger())

	rmock.ExpectGet(notification.SettingsKey).RedisNil()
	source.EXPECT().SendEmails(mock.Anything).Return(false, errors.New("db down")).Once()

	_, err := settings.SendEmails(context.Background())

	assert.Error(t, err)
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestCachedEmailSettings_Invalidate(t *testing.T) {
	db, rmock := redismock.NewClientMock()
	settings := notification.NewCachedEmailSettings(db, mocks.NewMockEmailSettings(t), time.Hour, discardLogger())

	rmock.ExpectDel(notification.SettingsKey).SetVal(1)

	assert.NoError(t, settings.Invalidate(context.Background()))
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestCachedEmailSettings_SetWritesThrough(t *testing.T) {
	db, rmock := redismock.NewClientMock()
	source := mocks.NewMockEmailSettings(t)
	settings := notification.NewCachedEmailSettings(db, source, time.Hour, discardLogger())

	source.EXPECT().SetSendEmails(mock.Anything, false).Return(nil).Once()
	rmock.ExpectDel(notification.SettingsKey).SetVal(1)

	require.NoError(t, settings.SetSendEmails(context.Background(), false))
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestCachedEmailSettings_SetSourceError(t *testing.T) {
	db, rmock := redismock.NewClientMock()
	source := mocks.NewMockEmailSettings(t)
	settings := notification.NewCachedEmailSettings(db, source, time.Hour, discardLogger())

	source.EXPECT().SetSendEmails(mock.Anything, true).Return(errors.New("db down")).Once()

	assert.Error(t, settings.SetSendEmails(context.Background(), true))
	assert.NoError(t, rmock.ExpectationsWereMet())
}
