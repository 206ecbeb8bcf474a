package dao

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ego-component/egorm"
	mysqlDriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

func newMockDB(t *testing.T) (*egorm.Component, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

var articleColumns = []string{"id", "title", "slug", "excerpt", "content", "image", "author", "category", "status", "publish_time", "ctime", "utime"}

func TestArticleDAO_FindPublishedByIDs(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		ids     []int64
		mock    func(mock sqlmock.Sqlmock)
		wantIDs []int64
		wantErr error
	}{
		{
			name: "空ID列表不查库",
			ids:  nil,
			mock: func(mock sqlmock.Sqlmock) {},
		},
		{
			name: "只返回查到的文章",
			ids:  []int64{5, 999},
			mock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(articleColumns).
					AddRow(5, "标题5", "t-5", "", "<p>x</p>", "", "tom", "go", ArticleStatusPublished, 1700000000000, 0, 0)
				mock.ExpectQuery("SELECT \\* FROM `articles` WHERE .*status = .*ORDER BY publish_time DESC").
					WillReturnRows(rows)
			},
			wantIDs: []int64{5},
		},
		{
			name: "数据库错误",
			ids:  []int64{1},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM `articles`").WillReturnError(errors.New("db down"))
			},
			wantErr: errors.New("db down"),
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			db, mock := newMockDB(t)
			tc.mock(mock)
			res, err := NewArticleDAO(db).FindPublishedByIDs(context.Background(), tc.ids)
			if tc.wantErr != nil {
				assert.EqualError(t, err, tc.wantErr.Error())
				return
			}
			require.NoError(t, err)
			ids := make([]int64, 0, len(res))
			for _, a := range res {
				ids = append(ids, a.ID)
			}
			assert.ElementsMatch(t, tc.wantIDs, ids)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestArticleDAO_FindPublishedBetween(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	rows := sqlmock.NewRows(articleColumns).
		AddRow(2, "晚间", "b", "", "", "", "", "", ArticleStatusPublished, 1700000300000, 0, 0).
		AddRow(1, "早间", "a", "", "", "", "", "", ArticleStatusPublished, 1700000100000, 0, 0)
	mock.ExpectQuery("SELECT \\* FROM `articles` WHERE .*publish_time >= .*publish_time < .*ORDER BY publish_time DESC").
		WillReturnRows(rows)
	res, err := NewArticleDAO(db).FindPublishedBetween(context.Background(), 1700000000000, 1700086400000)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, int64(2), res[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArticleDAO_FindLatestPublished(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	rows := sqlmock.NewRows(articleColumns).
		AddRow(9, "最新", "n", "", "", "", "", "", ArticleStatusPublished, 1700000900000, 0, 0)
	mock.ExpectQuery("SELECT \\* FROM `articles` WHERE status = .*ORDER BY publish_time DESC.*LIMIT").
		WillReturnRows(rows)
	res, err := NewArticleDAO(db).FindLatestPublished(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "最新", res[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscriptionDAO_FindActive(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	rows := sqlmock.NewRows([]string{"subscription_id", "email", "unsubscribe_token", "is_active", "username", "display_name"}).
		AddRow(1, "a@example.com", "tok-a", true, "alice", "Alice").
		AddRow(2, "b@example.com", "tok-b", true, "", "")
	mock.ExpectQuery("SELECT .* FROM subscriptions AS s LEFT JOIN users AS u ON u.id = s.user_id WHERE s.is_active = ").
		WillReturnRows(rows)
	res, err := NewSubscriptionDAO(db).FindActive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []SubscriberRow{
		{SubscriptionID: 1, Email: "a@example.com", UnsubscribeToken: "tok-a", IsActive: true, Username: "alice", DisplayName: "Alice"},
		{SubscriptionID: 2, Email: "b@example.com", UnsubscribeToken: "tok-b", IsActive: true},
	}, res)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendLogDAO(t *testing.T) {
	t.Parallel()

	t.Run("插入", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		mock.ExpectExec("INSERT INTO `newsletter_send_logs`").
			WillReturnResult(sqlmock.NewResult(1, 1))
		err := NewSendLogDAO(db).Insert(context.Background(), NewsletterSendLog{
			ID:             1,
			RecipientCount: 3,
			ArticleIDs:     "[1,2]",
			Subject:        "News: a",
			Status:         "partial",
			SuccessCount:   2,
			ErrorCount:     1,
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("指定大量文章的模式完整写入", func(t *testing.T) {
		t.Parallel()
		ids := make([]string, 0, 30)
		for i := 0; i < 30; i++ {
			ids = append(ids, strconv.Itoa(1000000+i))
		}
		mode := "explicit_articles(" + strings.Join(ids, ",") + ")"
		require.Greater(t, len(mode), 256)

		db, mock := newMockDB(t)
		mock.ExpectExec("INSERT INTO `newsletter_send_logs`").
			WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
				mode, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), uint64(7)).
			WillReturnResult(sqlmock.NewResult(7, 1))
		err := NewSendLogDAO(db).Insert(context.Background(), NewsletterSendLog{
			ID:           7,
			ArticleIDs:   "[" + strings.Join(ids, ",") + "]",
			Subject:      "News: a",
			Status:       "sent",
			Mode:         mode,
			SuccessCount: 1,
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())

		// 列宽不能限制模式的长度
		sch, err := schema.Parse(&NewsletterSendLog{}, &sync.Map{}, schema.NamingStrategy{})
		require.NoError(t, err)
		assert.Equal(t, schema.DataType("TEXT"), sch.LookUpField("Mode").DataType)
	})

	t.Run("没有ID时由数据库生成", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		mock.ExpectExec("INSERT INTO `newsletter_send_logs` \\(`recipient_count`").
			WillReturnResult(sqlmock.NewResult(42, 1))
		err := NewSendLogDAO(db).Insert(context.Background(), NewsletterSendLog{
			RecipientCount: 1,
			ArticleIDs:     "[1]",
			Subject:        "News: a",
			Status:         "sent",
			SuccessCount:   1,
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("列表", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		rows := sqlmock.NewRows([]string{"id", "recipient_count", "article_ids", "subject", "status", "error_message", "mode", "success_count", "error_count", "ctime", "utime"}).
			AddRow(2, 2, "[3]", "b", "sent", "", "scheduled", 2, 0, 200, 200).
			AddRow(1, 1, "[1]", "a", "partial", "x", "scheduled", 0, 1, 100, 100)
		mock.ExpectQuery("SELECT \\* FROM `newsletter_send_logs` ORDER BY ctime DESC").WillReturnRows(rows)
		res, err := NewSendLogDAO(db).List(context.Background(), 20)
		require.NoError(t, err)
		require.Len(t, res, 2)
		assert.Equal(t, uint64(2), res[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("今天已发送", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM `newsletter_send_logs` WHERE ctime >= ").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		ok, err := NewSendLogDAO(db).ExistsSentSince(context.Background(), 100)
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestNewsletterConfigDAO_GetByID(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		want    NewsletterConfig
		wantErr error
	}{
		{
			name: "查到配置",
			mock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "frequency", "send_time", "timezone", "weekday", "day_of_month", "tolerance_minutes", "ctime", "utime"}).
					AddRow(1, "daily", "08:00", "UTC", "", 0, 15, 0, 0)
				mock.ExpectQuery("SELECT \\* FROM `newsletter_configs` WHERE id = ").WillReturnRows(rows)
			},
			want: NewsletterConfig{ID: 1, Frequency: "daily", SendTime: "08:00", Timezone: "UTC", ToleranceMinutes: 15},
		},
		{
			name: "没有配置",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM `newsletter_configs`").
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
			},
			wantErr: gorm.ErrRecordNotFound,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			db, mock := newMockDB(t)
			tc.mock(mock)
			res, err := NewNewsletterConfigDAO(db).GetByID(context.Background(), 1)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.want, res)
		})
	}
}

func TestSendLockDAO(t *testing.T) {
	t.Parallel()

	t.Run("加锁成功", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		mock.ExpectExec("INSERT INTO `newsletter_send_locks`").WillReturnResult(sqlmock.NewResult(1, 1))
		err := NewSendLockDAO(db).Insert(context.Background(), "newsletter:2024-01-01", "owner", 1000)
		assert.NoError(t, err)
	})

	t.Run("锁已存在", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		mock.ExpectExec("INSERT INTO `newsletter_send_locks`").
			WillReturnError(&mysqlDriver.MySQLError{Number: mysqlDuplicateEntry, Message: "Duplicate entry"})
		err := NewSendLockDAO(db).Insert(context.Background(), "newsletter:2024-01-01", "owner", 1000)
		assert.ErrorIs(t, err, ErrDuplicateLock)
	})

	t.Run("删除过期锁", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		mock.ExpectExec("DELETE FROM `newsletter_send_locks` WHERE lock_key = .* AND expire_at < ").
			WillReturnResult(sqlmock.NewResult(0, 1))
		n, err := NewSendLockDAO(db).DeleteExpired(context.Background(), "k", 2000)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("释放锁", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		mock.ExpectExec("DELETE FROM `newsletter_send_locks` WHERE lock_key = .* AND owner = ").
			WillReturnResult(sqlmock.NewResult(0, 1))
		n, err := NewSendLockDAO(db).Delete(context.Background(), "k", "owner")
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})
}
