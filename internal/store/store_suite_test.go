//go:build integration

package store

import (
	"context"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/MKhiriev/go-item-transfer/internal/config"
	"github.com/MKhiriev/go-item-transfer/internal/logger"
	"github.com/MKhiriev/go-item-transfer/models"
)

var (
	pgContainer *postgres.PostgresContainer
	pgDB        *DB
	storages    *Storages
)

func TestStoreIntegration(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Store Postgres Integration Suite")
}

var _ = BeforeSuite(func() {
	ctx := context.Background()

	var err error
	pgContainer, err = postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("items_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	Expect(err).NotTo(HaveOccurred())

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	Expect(err).NotTo(HaveOccurred())

	pgDB, err = NewDB(ctx, config.DB{DSN: dsn}, logger.Nop())
	Expect(err).NotTo(HaveOccurred())
	Expect(pgDB.Dialect()).To(Equal(DialectPostgres))
	Expect(pgDB.Migrate(ctx)).To(Succeed())

	storages = NewStorages(pgDB, logger.Nop())
})

var _ = AfterSuite(func() {
	if pgDB != nil {
		_ = pgDB.Close()
	}
	if pgContainer != nil {
		_ = testcontainers.TerminateContainer(pgContainer)
	}
})

var _ = Describe("Postgres repositories", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
		_, err := pgDB.ExecContext(ctx, "TRUNCATE transfer_redemptions, items, users RESTART IDENTITY CASCADE")
		Expect(err).NotTo(HaveOccurred())
	})

	It("rejects duplicate logins", func() {
		_, err := storages.UserRepository.CreateUser(ctx, models.User{Login: "alice", Password: "h"})
		Expect(err).NotTo(HaveOccurred())

		_, err = storages.UserRepository.CreateUser(ctx, models.User{Login: "alice", Password: "h"})
		Expect(err).To(MatchError(ErrLoginAlreadyExists))
	})

	It("moves an item and records the redemption once", func() {
		alice, err := storages.UserRepository.CreateUser(ctx, models.User{Login: "alice", Password: "h"})
		Expect(err).NotTo(HaveOccurred())
		bob, err := storages.UserRepository.CreateUser(ctx, models.User{Login: "bob", Password: "h"})
		Expect(err).NotTo(HaveOccurred())
		item, err := storages.ItemRepository.CreateItem(ctx, models.Item{Name: "lamp", OwnerID: alice.UserID})
		Expect(err).NotTo(HaveOccurred())

		transfer := models.Transfer{CapabilityID: "cap-1", ItemID: item.ID, NewOwnerID: bob.UserID}
		moved, err := storages.TransferRepository.Redeem(ctx, transfer, true)
		Expect(err).NotTo(HaveOccurred())
		Expect(moved.OwnerID).To(Equal(bob.UserID))

		_, err = storages.TransferRepository.Redeem(ctx, transfer, true)
		Expect(err).To(MatchError(ErrTransferAlreadyRedeemed))

		var count int
		Expect(pgDB.QueryRowContext(ctx, "SELECT count(*) FROM transfer_redemptions").Scan(&count)).To(Succeed())
		Expect(count).To(Equal(1))
	})

	It("serializes concurrent single-use redemptions", func() {
		alice, _ := storages.UserRepository.CreateUser(ctx, models.User{Login: "alice", Password: "h"})
		bob, _ := storages.UserRepository.CreateUser(ctx, models.User{Login: "bob", Password: "h"})
		item, err := storages.ItemRepository.CreateItem(ctx, models.Item{Name: "lamp", OwnerID: alice.UserID})
		Expect(err).NotTo(HaveOccurred())

		transfer := models.Transfer{CapabilityID: "cap-race", ItemID: item.ID, NewOwnerID: bob.UserID}
		results := make(chan error, 4)
		for range 4 {
			go func() {
				defer GinkgoRecover()
				_, err := storages.TransferRepository.Redeem(ctx, transfer, true)
				results <- err
			}()
		}

		var succeeded, rejected int
		for range 4 {
			err := <-results
			switch {
			case err == nil:
				succeeded++
			default:
				Expect(err).To(MatchError(ErrTransferAlreadyRedeemed))
				rejected++
			}
		}
		Expect(succeeded).To(Equal(1))
		Expect(rejected).To(Equal(3))
	})

	It("cascades user deletion", func() {
		alice, _ := storages.UserRepository.CreateUser(ctx, models.User{Login: "alice", Password: "h"})
		item, err := storages.ItemRepository.CreateItem(ctx, models.Item{Name: "book", OwnerID: alice.UserID})
		Expect(err).NotTo(HaveOccurred())

		Expect(storages.UserRepository.DeleteUser(ctx, alice.UserID)).To(Succeed())

		_, err = storages.ItemRepository.FindItemByID(ctx, item.ID)
		Expect(err).To(MatchError(ErrItemNotFound))
	})
})
