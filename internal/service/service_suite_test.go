package service_test

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention

	"github.com/MKhiriev/go-item-transfer/internal/config"
	"github.com/MKhiriev/go-item-transfer/internal/logger"
	"github.com/MKhiriev/go-item-transfer/internal/service"
	"github.com/MKhiriev/go-item-transfer/internal/store"
	"github.com/MKhiriev/go-item-transfer/models"
)

func TestTransferScenarios(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Transfer Scenarios Suite")
}

const publicURL = "http://localhost:8000"

var databaseSeq atomic.Int64

type scenarioEnv struct {
	ctx      context.Context
	db       *store.DB
	storages *store.Storages
	services *service.Services
}

func newScenarioEnv(singleUse bool) *scenarioEnv {
	ctx := context.Background()

	db, err := store.NewDB(ctx, config.DB{DSN: fmt.Sprintf("file:scenario%d?mode=memory&cache=shared", databaseSeq.Add(1))}, logger.Nop())
	Expect(err).NotTo(HaveOccurred())
	DeferCleanup(db.Close)
	Expect(db.Migrate(ctx)).To(Succeed())

	storages := store.NewStorages(db, logger.Nop())
	cfg := config.App{
		TokenSignKey:       "scenario-secret",
		PublicURL:          publicURL,
		SingleUseTransfers: singleUse,
	}

	return &scenarioEnv{
		ctx:      ctx,
		db:       db,
		storages: storages,
		services: service.NewServices(storages, cfg, logger.Nop()),
	}
}

// register creates a user and returns it together with a session token.
func (e *scenarioEnv) register(login string) (models.User, string) {
	creds := models.Credentials{Login: login, Password: login + "-password"}
	user, err := e.services.AuthService.RegisterUser(e.ctx, creds)
	Expect(err).NotTo(HaveOccurred())

	token, err := e.services.AuthService.Login(e.ctx, creds)
	Expect(err).NotTo(HaveOccurred())

	return user, token.String()
}

func capabilityFrom(link string) string {
	Expect(link).To(HavePrefix(publicURL + service.RedeemPath))
	return strings.TrimPrefix(link, publicURL+service.RedeemPath)
}

var _ = Describe("Item transfer", func() {
	var (
		env                  *scenarioEnv
		alice, bob, carol    models.User
		aliceToken, bobToken string
		carolToken           string
		lamp                 models.Item
	)

	BeforeEach(func() {
		env = newScenarioEnv(false)
		alice, aliceToken = env.register("A")
		bob, bobToken = env.register("B")
		carol, carolToken = env.register("C")

		var err error
		lamp, err = env.services.ItemService.CreateItem(env.ctx, alice.UserID, models.CreateItemRequest{Name: "lamp"})
		Expect(err).NotTo(HaveOccurred())
		Expect(lamp.OwnerID).To(Equal(alice.UserID))
	})

	It("moves the item to the recipient", func() {
		link, err := env.services.TransferService.InitiateTransfer(env.ctx, aliceToken, lamp.ID, "B")
		Expect(err).NotTo(HaveOccurred())

		item, err := env.services.TransferService.RedeemTransfer(env.ctx, bobToken, capabilityFrom(link))
		Expect(err).NotTo(HaveOccurred())
		Expect(item.ID).To(Equal(lamp.ID))
		Expect(item.OwnerID).To(Equal(bob.UserID))

		stored, err := env.storages.ItemRepository.FindItemByID(env.ctx, lamp.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(stored.OwnerID).To(Equal(bob.UserID))
	})

	It("rejects a sender who does not own the item", func() {
		link, err := env.services.TransferService.InitiateTransfer(env.ctx, carolToken, lamp.ID, "B")
		Expect(err).To(MatchError(service.ErrOwnership))
		Expect(link).To(BeEmpty())
	})

	It("rejects a recipient other than the one named in the capability", func() {
		link, err := env.services.TransferService.InitiateTransfer(env.ctx, aliceToken, lamp.ID, "B")
		Expect(err).NotTo(HaveOccurred())

		stranger, err := env.services.TokenService.IssueSessionToken(carol.UserID + 1)
		Expect(err).NotTo(HaveOccurred())

		_, err = env.services.TransferService.RedeemTransfer(env.ctx, stranger.String(), capabilityFrom(link))
		Expect(err).To(MatchError(service.ErrOwnership))

		stored, err := env.storages.ItemRepository.FindItemByID(env.ctx, lamp.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(stored.OwnerID).To(Equal(alice.UserID))
	})

	It("reports a missing item when it was deleted before redemption", func() {
		link, err := env.services.TransferService.InitiateTransfer(env.ctx, aliceToken, lamp.ID, "B")
		Expect(err).NotTo(HaveOccurred())

		Expect(env.services.ItemService.DeleteItem(env.ctx, alice.UserID, lamp.ID)).To(Succeed())

		_, err = env.services.TransferService.RedeemTransfer(env.ctx, bobToken, capabilityFrom(link))
		Expect(err).To(MatchError(service.ErrNoValueFound))
	})

	It("rejects a garbled capability", func() {
		link, err := env.services.TransferService.InitiateTransfer(env.ctx, aliceToken, lamp.ID, "B")
		Expect(err).NotTo(HaveOccurred())

		garbled := capabilityFrom(link) + "x"
		_, err = env.services.TransferService.RedeemTransfer(env.ctx, bobToken, garbled)
		Expect(err).To(MatchError(service.ErrInvalidToken))
	})

	It("rejects a session token used as a capability", func() {
		_, err := env.services.TransferService.RedeemTransfer(env.ctx, bobToken, bobToken)
		Expect(err).To(MatchError(service.ErrInvalidToken))
	})

	It("lets a capability be replayed while single use is off", func() {
		link, err := env.services.TransferService.InitiateTransfer(env.ctx, aliceToken, lamp.ID, "B")
		Expect(err).NotTo(HaveOccurred())

		for range 2 {
			item, err := env.services.TransferService.RedeemTransfer(env.ctx, bobToken, capabilityFrom(link))
			Expect(err).NotTo(HaveOccurred())
			Expect(item.OwnerID).To(Equal(bob.UserID))
		}
	})

	It("reports an unknown recipient", func() {
		_, err := env.services.TransferService.InitiateTransfer(env.ctx, aliceToken, lamp.ID, "nobody")

		var valueErr *service.ValueError
		Expect(err).To(BeAssignableToTypeOf(valueErr))
		Expect(err).To(MatchError(service.ErrNoValueFound))
	})
})

var _ = Describe("Single use transfers", func() {
	It("refuses the second redemption", func() {
		env := newScenarioEnv(true)
		alice, aliceToken := env.register("A")
		_, bobToken := env.register("B")

		lamp, err := env.services.ItemService.CreateItem(env.ctx, alice.UserID, models.CreateItemRequest{Name: "lamp"})
		Expect(err).NotTo(HaveOccurred())

		link, err := env.services.TransferService.InitiateTransfer(env.ctx, aliceToken, lamp.ID, "B")
		Expect(err).NotTo(HaveOccurred())

		_, err = env.services.TransferService.RedeemTransfer(env.ctx, bobToken, capabilityFrom(link))
		Expect(err).NotTo(HaveOccurred())

		_, err = env.services.TransferService.RedeemTransfer(env.ctx, bobToken, capabilityFrom(link))
		Expect(err).To(MatchError(service.ErrTransferAlreadyRedeemed))
	})
})
