package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"dronedispatch/internal/core/application/usecases/commands"
	"dronedispatch/internal/core/domain/model/drone"
	"dronedispatch/internal/core/domain/model/kernel"
	"dronedispatch/internal/core/domain/model/medication"
	"dronedispatch/internal/core/domain/model/session"
	"dronedispatch/internal/core/ports"
	"dronedispatch/internal/pkg/errs"
	"dronedispatch/internal/pkg/locker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock implementations for testing.
type MockLoadCatalog struct {
	mock.Mock
}

func (m *MockLoadCatalog) Get(ctx context.Context, id kernel.UUID) (*medication.Medication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*medication.Medication), args.Error(1)
}

type MockLoadUoW struct {
	mock.Mock
}

func (m *MockLoadUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLoadUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLoadUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLoadUoW) DroneRepository() ports.DroneRepository {
	args := m.Called()
	return args.Get(0).(ports.DroneRepository)
}

func (m *MockLoadUoW) SessionRepository() ports.SessionRepository {
	args := m.Called()
	return args.Get(0).(ports.SessionRepository)
}

func (m *MockLoadUoW) MedicationCatalog() ports.MedicationCatalog {
	args := m.Called()
	return args.Get(0).(ports.MedicationCatalog)
}

type MockLoadUoWFactory struct {
	mock.Mock
}

func (m *MockLoadUoWFactory) Create() commands.LoadUoW {
	args := m.Called()
	return args.Get(0).(commands.LoadUoW)
}

type loadFixture struct {
	drone      *drone.Drone
	session    *session.DeliverySession
	medication *medication.Medication

	droneRepo   *MockDroneRepository
	sessionRepo *MockAcquireSessionRepository
	catalog     *MockLoadCatalog
	uow         *MockLoadUoW
	factory     *MockLoadUoWFactory
	handler     commands.LoadMedicationCommandHandler
}

// newLoadFixture assembles a drone in the loading state with an open
// session and a 100g catalog medication, wired through happy path mocks.
func newLoadFixture(t *testing.T) *loadFixture {
	t.Helper()

	d, err := drone.RestoreDrone(kernel.NewUUID(), "DRN-001", drone.Middleweight, 500, 80, drone.Loading)
	require.NoError(t, err)

	s, err := session.NewDeliverySession(kernel.NewUUID(), d.ID())
	require.NoError(t, err)

	m, err := medication.RestoreMedication(kernel.NewUUID(), "Paracetamol_500", 100, "PARA_500")
	require.NoError(t, err)

	f := &loadFixture{
		drone:       d,
		session:     s,
		medication:  m,
		droneRepo:   new(MockDroneRepository),
		sessionRepo: new(MockAcquireSessionRepository),
		catalog:     new(MockLoadCatalog),
		uow:         new(MockLoadUoW),
		factory:     new(MockLoadUoWFactory),
	}

	f.factory.On("Create").Return(f.uow)
	f.uow.On("Begin", mock.Anything).Return(nil)
	f.uow.On("Rollback", mock.Anything).Return(nil)
	f.uow.On("DroneRepository").Return(f.droneRepo)
	f.uow.On("SessionRepository").Return(f.sessionRepo)
	f.uow.On("MedicationCatalog").Return(f.catalog)

	f.handler = commands.NewLoadMedicationCommandHandler(f.factory, locker.NewKeyedLocker())
	return f
}

func TestLoadMedicationCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	f := newLoadFixture(t)

	cmd, err := commands.NewLoadMedicationCommand(f.session.ID(), f.medication.ID(), 5)
	require.NoError(t, err)

	f.sessionRepo.On("GetOpenByID", ctx, f.session.ID()).Return(f.session, nil).Once()
	f.droneRepo.On("Get", ctx, f.drone.ID()).Return(f.drone, nil).Once()
	f.catalog.On("Get", ctx, f.medication.ID()).Return(f.medication, nil).Once()
	f.sessionRepo.On("GetTotalWeight", ctx, f.session.ID()).Return(0.0, nil).Once()
	f.sessionRepo.On("Update", ctx, f.session).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()

	// Act
	result, err := f.handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 5, result.Quantity)
	assert.True(t, result.DroneID.IsEqual(f.drone.ID()))
	assert.True(t, result.MedicationID.IsEqual(f.medication.ID()))
	assert.Len(t, f.session.Loads(), 1)
	f.sessionRepo.AssertExpectations(t)
	f.catalog.AssertExpectations(t)
}

func TestLoadMedicationCommandHandler_Handle_AccumulatesQuantity(t *testing.T) {
	// Arrange
	ctx := t.Context()
	f := newLoadFixture(t)

	_, err := f.session.UpsertLoad(f.drone.ID(), f.medication.ID(), 3)
	require.NoError(t, err)

	cmd, err := commands.NewLoadMedicationCommand(f.session.ID(), f.medication.ID(), 4)
	require.NoError(t, err)

	f.sessionRepo.On("GetOpenByID", ctx, f.session.ID()).Return(f.session, nil).Once()
	f.droneRepo.On("Get", ctx, f.drone.ID()).Return(f.drone, nil).Once()
	f.catalog.On("Get", ctx, f.medication.ID()).Return(f.medication, nil).Once()
	f.sessionRepo.On("GetTotalWeight", ctx, f.session.ID()).Return(300.0, nil).Once()
	f.sessionRepo.On("Update", ctx, f.session).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()

	// Act
	result, err := f.handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 7, result.Quantity)
	assert.Len(t, f.session.Loads(), 1)
}

func TestLoadMedicationCommandHandler_Handle_ExactCapacityFit(t *testing.T) {
	// Arrange
	ctx := t.Context()
	f := newLoadFixture(t)

	// 5 units of 100g exactly fill the 500g limit
	cmd, err := commands.NewLoadMedicationCommand(f.session.ID(), f.medication.ID(), 5)
	require.NoError(t, err)

	f.sessionRepo.On("GetOpenByID", ctx, f.session.ID()).Return(f.session, nil).Once()
	f.droneRepo.On("Get", ctx, f.drone.ID()).Return(f.drone, nil).Once()
	f.catalog.On("Get", ctx, f.medication.ID()).Return(f.medication, nil).Once()
	f.sessionRepo.On("GetTotalWeight", ctx, f.session.ID()).Return(0.0, nil).Once()
	f.sessionRepo.On("Update", ctx, f.session).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()

	// Act
	_, err = f.handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
}

func TestLoadMedicationCommandHandler_Handle_CapacityExceeded(t *testing.T) {
	// Arrange
	ctx := t.Context()
	f := newLoadFixture(t)

	cmd, err := commands.NewLoadMedicationCommand(f.session.ID(), f.medication.ID(), 2)
	require.NoError(t, err)

	f.sessionRepo.On("GetOpenByID", ctx, f.session.ID()).Return(f.session, nil).Once()
	f.droneRepo.On("Get", ctx, f.drone.ID()).Return(f.drone, nil).Once()
	f.catalog.On("Get", ctx, f.medication.ID()).Return(f.medication, nil).Once()
	f.sessionRepo.On("GetTotalWeight", ctx, f.session.ID()).Return(450.0, nil).Once()

	// Act
	_, err = f.handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrCapacityExceeded)
	assert.Empty(t, f.session.Loads())
	f.sessionRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestLoadMedicationCommandHandler_Handle_SessionNotFound(t *testing.T) {
	// Arrange
	ctx := t.Context()
	f := newLoadFixture(t)
	unknownSessionID := kernel.NewUUID()

	cmd, err := commands.NewLoadMedicationCommand(unknownSessionID, f.medication.ID(), 1)
	require.NoError(t, err)

	f.sessionRepo.On("GetOpenByID", ctx, unknownSessionID).
		Return(nil, errs.NewObjectNotFoundError("session", unknownSessionID.String())).Once()

	// Act
	_, err = f.handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestLoadMedicationCommandHandler_Handle_DroneBatteryDrained(t *testing.T) {
	// Arrange
	ctx := t.Context()
	f := newLoadFixture(t)

	drained, err := drone.RestoreDrone(f.drone.ID(), "DRN-001", drone.Middleweight, 500, 10, drone.Loading)
	require.NoError(t, err)

	cmd, err := commands.NewLoadMedicationCommand(f.session.ID(), f.medication.ID(), 1)
	require.NoError(t, err)

	f.sessionRepo.On("GetOpenByID", ctx, f.session.ID()).Return(f.session, nil).Once()
	f.droneRepo.On("Get", ctx, f.drone.ID()).Return(drained, nil).Once()

	// Act
	_, err = f.handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrBatteryTooLow)
	f.catalog.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestLoadMedicationCommandHandler_Handle_MedicationNotFound(t *testing.T) {
	// Arrange
	ctx := t.Context()
	f := newLoadFixture(t)
	unknownMedicationID := kernel.NewUUID()

	cmd, err := commands.NewLoadMedicationCommand(f.session.ID(), unknownMedicationID, 1)
	require.NoError(t, err)

	f.sessionRepo.On("GetOpenByID", ctx, f.session.ID()).Return(f.session, nil).Once()
	f.droneRepo.On("Get", ctx, f.drone.ID()).Return(f.drone, nil).Once()
	f.catalog.On("Get", ctx, unknownMedicationID).
		Return(nil, errs.NewObjectNotFoundError("medication", unknownMedicationID.String())).Once()

	// Act
	_, err = f.handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestLoadMedicationCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := t.Context()
	var invalidCmd commands.LoadMedicationCommand // zero value command

	mockFactory := new(MockLoadUoWFactory)
	handler := commands.NewLoadMedicationCommandHandler(mockFactory, locker.NewKeyedLocker())

	// Act
	_, err := handler.Handle(ctx, invalidCmd)

	// Assert
	require.ErrorIs(t, err, commands.ErrLoadMedicationCommandIsNotConstructed)
	mockFactory.AssertExpectations(t)
}

// fakeLoadState emulates committed storage shared by concurrent loads.
// GetTotalWeight reads the committed total and Update advances it, so
// whether the capacity check and the write behave atomically depends
// entirely on the handler's per-session serialization.
type fakeLoadState struct {
	mu          sync.Mutex
	total       float64
	unitWeight  float64
	drone       *drone.Drone
	session     *session.DeliverySession
	medication  *medication.Medication
	commitCount int
}

type fakeLoadUoW struct {
	state *fakeLoadState
}

func (u *fakeLoadUoW) Begin(context.Context) error    { return nil }
func (u *fakeLoadUoW) Commit(context.Context) error   { return nil }
func (u *fakeLoadUoW) Rollback(context.Context) error { return nil }

func (u *fakeLoadUoW) DroneRepository() ports.DroneRepository     { return fakeDroneRepo{u.state} }
func (u *fakeLoadUoW) SessionRepository() ports.SessionRepository { return fakeSessionRepo{u.state} }
func (u *fakeLoadUoW) MedicationCatalog() ports.MedicationCatalog { return fakeCatalog{u.state} }

type fakeDroneRepo struct{ state *fakeLoadState }

func (r fakeDroneRepo) Add(context.Context, *drone.Drone) error    { return nil }
func (r fakeDroneRepo) Update(context.Context, *drone.Drone) error { return nil }
func (r fakeDroneRepo) Get(context.Context, kernel.UUID) (*drone.Drone, error) {
	return r.state.drone, nil
}
func (r fakeDroneRepo) GetForUpdate(context.Context, kernel.UUID) (*drone.Drone, error) {
	return r.state.drone, nil
}
func (r fakeDroneRepo) GetBySerialNumber(context.Context, string) (*drone.Drone, error) {
	return r.state.drone, nil
}
func (r fakeDroneRepo) GetAll(context.Context) ([]*drone.Drone, error) {
	return []*drone.Drone{r.state.drone}, nil
}

type fakeSessionRepo struct{ state *fakeLoadState }

func (r fakeSessionRepo) Add(context.Context, *session.DeliverySession) error { return nil }
func (r fakeSessionRepo) Update(_ context.Context, s *session.DeliverySession) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	r.state.total = 0
	for _, load := range s.Loads() {
		r.state.total += float64(load.Quantity()) * r.state.unitWeight
	}
	r.state.commitCount++
	return nil
}
func (r fakeSessionRepo) GetOpenByID(context.Context, kernel.UUID) (*session.DeliverySession, error) {
	return r.state.session, nil
}
func (r fakeSessionRepo) GetOpenByDroneID(context.Context, kernel.UUID) (*session.DeliverySession, error) {
	return r.state.session, nil
}
func (r fakeSessionRepo) GetLatestByDroneID(context.Context, kernel.UUID) (*session.DeliverySession, error) {
	return r.state.session, nil
}
func (r fakeSessionRepo) GetTotalWeight(context.Context, kernel.UUID) (float64, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	return r.state.total, nil
}

type fakeCatalog struct{ state *fakeLoadState }

func (c fakeCatalog) Get(context.Context, kernel.UUID) (*medication.Medication, error) {
	return c.state.medication, nil
}

type fakeLoadUoWFactory struct{ state *fakeLoadState }

func (f fakeLoadUoWFactory) Create() commands.LoadUoW { return &fakeLoadUoW{state: f.state} }

func TestLoadMedicationCommandHandler_Handle_ConcurrentLoadsRespectCapacity(t *testing.T) {
	// Arrange: a 500g drone, a 300g medication unit, and two concurrent
	// single-unit loads. Only one of them can fit.
	ctx := t.Context()

	d, err := drone.RestoreDrone(kernel.NewUUID(), "DRN-001", drone.Middleweight, 500, 80, drone.Loading)
	require.NoError(t, err)

	s, err := session.NewDeliverySession(kernel.NewUUID(), d.ID())
	require.NoError(t, err)

	m, err := medication.RestoreMedication(kernel.NewUUID(), "Insulin-Kit", 300, "INS_KIT_1")
	require.NoError(t, err)

	state := &fakeLoadState{unitWeight: 300, drone: d, session: s, medication: m}
	handler := commands.NewLoadMedicationCommandHandler(fakeLoadUoWFactory{state: state}, locker.NewKeyedLocker())

	cmd, err := commands.NewLoadMedicationCommand(s.ID(), m.ID(), 1)
	require.NoError(t, err)

	// Act
	results := make(chan error, 2)
	var wg sync.WaitGroup
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, handleErr := handler.Handle(ctx, cmd)
			results <- handleErr
		}()
	}
	wg.Wait()
	close(results)

	// Assert: exactly one load succeeded, the other was rejected.
	var succeeded, rejected int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, errs.ErrCapacityExceeded):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, rejected)
	assert.InDelta(t, 300.0, state.total, 0.001)
}
