package auth_test

import (
	"log/slog"
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/pharmalife/timetracker/internal/auth"
	workerModel "github.com/pharmalife/timetracker/internal/core/datamodel/worker"
)

// Mock worker listing for testing
type mockWorkerSource struct {
	workers []*workerModel.Worker
}

func (m *mockWorkerSource) All() ([]*workerModel.Worker, error) {
	return m.workers, nil
}

func hashPassword(plain string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	Expect(err).ToNot(HaveOccurred())
	return string(hash)
}

var _ = Describe("JWTTokenGenerator", func() {
	It("round-trips claims through a signed token", func() {
		gen := auth.NewJWTTokenGenerator("test-secret-key-at-least-32-chars!!", time.Hour)

		token, err := gen.GenerateToken("w1", "Sarah Chen")
		Expect(err).ToNot(HaveOccurred())
		Expect(token).ToNot(BeEmpty())

		claims, err := gen.ValidateToken(token)
		Expect(err).ToNot(HaveOccurred())
		Expect(claims.WorkerID).To(Equal("w1"))
		Expect(claims.Name).To(Equal("Sarah Chen"))
		Expect(claims.Subject).To(Equal("w1"))
	})

	It("rejects a token signed with a different secret", func() {
		gen := auth.NewJWTTokenGenerator("test-secret-key-at-least-32-chars!!", time.Hour)
		other := auth.NewJWTTokenGenerator("another-secret-key-that-is-long-too", time.Hour)

		token, err := other.GenerateToken("w1", "Sarah Chen")
		Expect(err).ToNot(HaveOccurred())

		_, err = gen.ValidateToken(token)
		Expect(err).To(Equal(auth.ErrInvalidToken))
	})

	It("rejects an expired token", func() {
		gen := auth.NewJWTTokenGenerator("test-secret-key-at-least-32-chars!!", -time.Minute)

		token, err := gen.GenerateToken("w1", "Sarah Chen")
		Expect(err).ToNot(HaveOccurred())

		_, err = gen.ValidateToken(token)
		Expect(err).To(Equal(auth.ErrTokenExpired))
	})

	It("rejects garbage", func() {
		gen := auth.NewJWTTokenGenerator("test-secret-key-at-least-32-chars!!", time.Hour)

		_, err := gen.ValidateToken("not.a.token")
		Expect(err).To(Equal(auth.ErrInvalidToken))
	})
})

var _ = Describe("AuthService", func() {
	var (
		svc     *auth.Service
		workers *mockWorkerSource
	)

	BeforeEach(func() {
		workers = &mockWorkerSource{workers: []*workerModel.Worker{
			{ID: "w1", Name: "Sarah Chen", Role: workerModel.RolePA, Active: true, Password: hashPassword("hunter2")},
			{ID: "w2", Name: "James Okafor", Role: workerModel.RoleMOA, Active: true},
			{ID: "w3", Name: "Dana Whitfield", Role: workerModel.RoleRPH, Active: false, Password: hashPassword("hunter2")},
		}}
		gen := auth.NewJWTTokenGenerator("test-secret-key-at-least-32-chars!!", time.Hour)
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		svc = auth.NewService(workers, gen, logger)
	})

	Describe("Authenticate", func() {
		It("issues a session for valid credentials", func() {
			session, err := svc.Authenticate(auth.LoginDTO{Name: "Sarah Chen", Password: "hunter2"})

			Expect(err).ToNot(HaveOccurred())
			Expect(session.WorkerID).To(Equal("w1"))
			Expect(session.Role).To(Equal(workerModel.RolePA))
			Expect(session.Token).ToNot(BeEmpty())

			claims, err := svc.ValidateToken(session.Token)
			Expect(err).ToNot(HaveOccurred())
			Expect(claims.WorkerID).To(Equal("w1"))
		})

		It("rejects a wrong password", func() {
			_, err := svc.Authenticate(auth.LoginDTO{Name: "Sarah Chen", Password: "wrong"})

			Expect(err).To(Equal(auth.ErrInvalidCredentials))
		})

		It("rejects an unknown name", func() {
			_, err := svc.Authenticate(auth.LoginDTO{Name: "Nobody", Password: "hunter2"})

			Expect(err).To(Equal(auth.ErrInvalidCredentials))
		})

		It("lets a worker without a stored password in with an empty one", func() {
			session, err := svc.Authenticate(auth.LoginDTO{Name: "James Okafor"})

			Expect(err).ToNot(HaveOccurred())
			Expect(session.WorkerID).To(Equal("w2"))
		})

		It("rejects a submitted password when none is stored", func() {
			_, err := svc.Authenticate(auth.LoginDTO{Name: "James Okafor", Password: "anything"})

			Expect(err).To(Equal(auth.ErrInvalidCredentials))
		})

		It("rejects inactive workers even with the right password", func() {
			_, err := svc.Authenticate(auth.LoginDTO{Name: "Dana Whitfield", Password: "hunter2"})

			Expect(err).To(Equal(auth.ErrWorkerInactive))
		})

		It("requires a name", func() {
			_, err := svc.Authenticate(auth.LoginDTO{Password: "hunter2"})

			Expect(err).To(MatchError("name is required"))
		})
	})
})
