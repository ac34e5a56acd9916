package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"garmenttrack/internal/core/application/usecases/commands"
	"garmenttrack/internal/core/domain/model/kernel"
	"garmenttrack/internal/core/domain/model/notification"
	"garmenttrack/internal/core/domain/model/order"
	"garmenttrack/internal/core/ports"
	"garmenttrack/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order, expectedStatus order.Status) error {
	args := m.Called(ctx, o, expectedStatus)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByCode(_ context.Context, _ kernel.OrderCode) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) GetAllUnsent(ctx context.Context, limit int) ([]*notification.Notification, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) PurgeSentBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()

	buyer, err := order.NewBuyer(kernel.NewUUID(),
		"Rahim Textiles", "orders@rahimtextiles.example", "+8801711111111",
		"12 Mirpur Road, Dhaka", "")
	require.NoError(t, err)

	unitPrice, err := kernel.NewMoney(1250)
	require.NoError(t, err)
	product, err := order.NewProductSnapshot(kernel.NewUUID(),
		"Classic Polo Shirt", "Knitwear", unitPrice, 50, nil)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewOrderCode(),
		buyer, product, 100, order.COD, time.Now())
	require.NoError(t, err)
	return o
}

func TestApproveOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := newPendingOrder(t)
	cmd, _ := commands.NewApproveOrderCommand(o.ID(), kernel.NewUUID(), order.RoleManager)

	orderRepo := new(MockOrderRepository)
	outboxRepo := new(MockNotificationRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, o, order.Pending).Return(nil).Once(),
		uow.On("NotificationRepository").Return(outboxRepo).Once(),
		outboxRepo.On("Add", mock.Anything, mock.AnythingOfType("*notification.Notification")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApproveOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Approved, o.Status())
	require.NotNil(t, o.ApprovedAt())
	orderRepo.AssertExpectations(t)
	outboxRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestApproveOrderCommandHandler_Handle_BuyerNotAllowed(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewApproveOrderCommand(kernel.NewUUID(), kernel.NewUUID(), order.RoleBuyer)

	factory := new(MockUoWFactory)
	h := commands.NewApproveOrderCommandHandler(factory)

	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrActorIsNotAllowed)
	factory.AssertNotCalled(t, "Create")
}

func TestApproveOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ApproveOrderCommand{} // not constructed properly
	factory := new(MockUoWFactory)
	h := commands.NewApproveOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestApproveOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewApproveOrderCommand(orderID, kernel.NewUUID(), order.RoleAdmin)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).
			Return(nil, errs.NewObjectNotFoundError("orderID", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApproveOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestApproveOrderCommandHandler_Handle_AlreadyDecided(t *testing.T) {
	ctx := t.Context()
	o := newPendingOrder(t)
	require.NoError(t, o.Reject())
	cmd, _ := commands.NewApproveOrderCommand(o.ID(), kernel.NewUUID(), order.RoleManager)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApproveOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	require.Equal(t, order.Rejected, o.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestApproveOrderCommandHandler_Handle_ConcurrentDecisionLoses(t *testing.T) {
	ctx := t.Context()
	o := newPendingOrder(t)
	cmd, _ := commands.NewApproveOrderCommand(o.ID(), kernel.NewUUID(), order.RoleManager)

	// The row was decided by someone else between Get and Update, so the
	// status-guarded update reports an invalid transition.
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, o, order.Pending).
			Return(errs.NewInvalidTransitionError(o.ID().String(), "Rejected", "Approved")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApproveOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	uow.AssertExpectations(t)
}
