//go:build unit

package booking_test

import (
	"testing"
	"time"

	"lab-reservation/internal/domain/booking"
	"lab-reservation/internal/domain/identity"
	"lab-reservation/internal/domain/user"
	"lab-reservation/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	now   = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	today = booking.DateOf(now)
)

func actorWith(id uuid.UUID, roles ...user.Role) identity.Actor {
	return identity.NewActor(id, user.Roles(roles))
}

func TestNew(t *testing.T) {
	t.Run("申請者区分ごとの初期状態", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.BookingBuilder)
			want   booking.Status
		}{
			{"学生は teacher_pending", func(b *builder.BookingBuilder) { b.AsStudent() }, booking.StatusTeacherPending},
			{"教員は pending", func(b *builder.BookingBuilder) { b.AsTeacher() }, booking.StatusPending},
			{"学外は pending", func(b *builder.BookingBuilder) { b.AsExternal() }, booking.StatusPending},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				b, err := builder.NewBookingBuilder().With(c.mutate).BuildDomain()
				require.NoError(t, err)
				assert.Equal(t, c.want, b.Status())
				assert.Equal(t, booking.PaymentUnpaid, b.PaymentStatus())
				assert.True(t, b.RefundAmount().IsZero())
				assert.True(t, b.Occupies())
			})
		}
	})

	t.Run("学生で指導教員無しNG", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.AsStudent().WithoutAdvisor()
		}).BuildDomain()
		require.Nil(t, b)
		require.ErrorIs(t, err, booking.ErrAdvisorRequired)
	})

	t.Run("教員の申請では指導教員を保持しない", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.AsTeacher().WithAdvisor(uuid.New())
		}).BuildDomain()
		require.NoError(t, err)
		assert.Nil(t, b.AdvisorID())
	})

	t.Run("Snapshot と Reconstruct は往復で一致", func(t *testing.T) {
		orig := builder.NewBookingBuilder().AsExternal().WithStatus("payment_pending").BuildStored()
		again := booking.Reconstruct(orig.Snapshot())
		if diff := cmp.Diff(orig.Snapshot(), again.Snapshot(), cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestValidateWindow(t *testing.T) {
	cases := []struct {
		name  string
		date  time.Time
		errIs error
	}{
		{"当日NG", today, booking.ErrInvalidDateRange},
		{"翌日OK", today.AddDate(0, 0, 1), nil},
		{"7日後OK", today.AddDate(0, 0, 7), nil},
		{"8日後NG", today.AddDate(0, 0, 8), booking.ErrInvalidDateRange},
		{"過去NG", today.AddDate(0, 0, -1), booking.ErrInvalidDateRange},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := booking.ValidateWindow(c.date, today, booking.DefaultWindowDays)
			if c.errIs == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, c.errIs)
		})
	}
}

func TestFormatCode(t *testing.T) {
	assert.Equal(t, "BOOK20250601001", booking.FormatCode(today, 1))
	assert.Equal(t, "BOOK20250601042", booking.FormatCode(today, 42))
	assert.Equal(t, "BOOK202506011000", booking.FormatCode(today, 1000))
}

func TestClassOf(t *testing.T) {
	cases := []struct {
		name  string
		roles user.Roles
		want  booking.ApplicantClass
		errIs error
	}{
		{"学生", user.Roles{user.RoleStudent}, booking.ClassStudent, nil},
		{"教員は学生より優先", user.Roles{user.RoleStudent, user.RoleTeacher}, booking.ClassTeacher, nil},
		{"学外", user.Roles{user.RoleExternal}, booking.ClassExternal, nil},
		{"管理者のみNG", user.Roles{user.RoleAdmin}, "", booking.ErrNotApplicant},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := booking.ClassOf(c.roles)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestApprovalFlow(t *testing.T) {
	t.Run("学生の承認経路", func(t *testing.T) {
		teacherID := uuid.New()
		b := builder.NewBookingBuilder().AsStudent().WithAdvisor(teacherID).BuildStored()
		teacher := actorWith(teacherID, user.RoleTeacher)
		admin := actorWith(uuid.New(), user.RoleAdmin)

		t1, err := b.Decide(teacher, booking.LevelTeacher, booking.ActionApprove, "ok", now)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.False(t, t1.Grants())

		t2, err := b.Decide(admin, booking.LevelAdmin, booking.ActionApprove, "", now)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusManagerApproved, b.Status())
		assert.True(t, t2.Grants())

		records := []*booking.ApprovalRecord{t1.Record, t2.Record}
		assert.Equal(t, booking.LevelTeacher, records[0].Level())
		assert.Equal(t, booking.LevelAdmin, records[1].Level())
		for _, r := range records {
			assert.Equal(t, booking.ActionApprove, r.Action())
			assert.Equal(t, b.ID(), r.BookingID())
		}

		replayed, err := booking.Replay(booking.StatusTeacherPending, booking.ClassStudent, records)
		require.NoError(t, err)
		assert.Equal(t, b.Status(), replayed)
	})

	t.Run("学外の承認と支払い経路", func(t *testing.T) {
		b := builder.NewBookingBuilder().AsExternal().WithPayment("200.00", "unpaid").BuildStored()
		admin := actorWith(uuid.New(), user.RoleAdmin)
		manager := actorWith(uuid.New(), user.RoleManager)

		_, err := b.Decide(admin, booking.LevelAdmin, booking.ActionApprove, "", now)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusAdminApproved, b.Status())

		tr, err := b.Decide(manager, booking.LevelManager, booking.ActionApprove, "", now)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusPaymentPending, b.Status())
		assert.True(t, tr.RequestsPayment())

		paid, changed, err := b.ConfirmPayment(now)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.True(t, paid.Grants())
		assert.Equal(t, booking.StatusManagerApproved, b.Status())
		assert.Equal(t, booking.PaymentPaid, b.PaymentStatus())

		_, changed, err = b.ConfirmPayment(now.Add(time.Minute))
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, now, b.UpdatedAt())
	})

	t.Run("却下は終端", func(t *testing.T) {
		b := builder.NewBookingBuilder().AsTeacher().BuildStored()
		admin := actorWith(uuid.New(), user.RoleAdmin)

		tr, err := b.Decide(admin, booking.LevelAdmin, booking.ActionReject, "no operator available", now)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusAdminRejected, b.Status())
		assert.Equal(t, "no operator available", tr.Record.Comment())
		assert.True(t, b.Status().IsTerminal())
		assert.False(t, b.Occupies())

		_, err = b.Decide(admin, booking.LevelAdmin, booking.ActionApprove, "", now)
		require.ErrorIs(t, err, booking.ErrUnauthorized)
	})

	t.Run("支払い確認は payment_pending 以外NG", func(t *testing.T) {
		b := builder.NewBookingBuilder().AsExternal().WithStatus("admin_approved").BuildStored()
		_, _, err := b.ConfirmPayment(now)
		require.ErrorIs(t, err, booking.ErrInvalidTransition)
		assert.Equal(t, booking.StatusAdminApproved, b.Status())
	})
}

func TestAuthorizationGate(t *testing.T) {
	advisorID := uuid.New()
	cases := []struct {
		name   string
		mutate func(*builder.BookingBuilder)
		actor  identity.Actor
		level  booking.Level
	}{
		{
			name:   "指導教員以外の教員NG",
			mutate: func(b *builder.BookingBuilder) { b.AsStudent().WithAdvisor(advisorID) },
			actor:  actorWith(uuid.New(), user.RoleTeacher),
			level:  booking.LevelTeacher,
		},
		{
			name:   "教員ロールを持たない指導教員IDNG",
			mutate: func(b *builder.BookingBuilder) { b.AsStudent().WithAdvisor(advisorID) },
			actor:  actorWith(advisorID, user.RoleStudent),
			level:  booking.LevelTeacher,
		},
		{
			name:   "pending 以外への管理者操作NG",
			mutate: func(b *builder.BookingBuilder) { b.AsStudent() },
			actor:  actorWith(uuid.New(), user.RoleAdmin),
			level:  booking.LevelAdmin,
		},
		{
			name:   "管理者ロール無しNG",
			mutate: func(b *builder.BookingBuilder) { b.AsTeacher() },
			actor:  actorWith(uuid.New(), user.RoleManager),
			level:  booking.LevelAdmin,
		},
		{
			name:   "学内申請への責任者操作NG",
			mutate: func(b *builder.BookingBuilder) { b.AsTeacher().WithStatus("admin_approved") },
			actor:  actorWith(uuid.New(), user.RoleManager),
			level:  booking.LevelManager,
		},
		{
			name:   "admin_approved 以外への責任者操作NG",
			mutate: func(b *builder.BookingBuilder) { b.AsExternal() },
			actor:  actorWith(uuid.New(), user.RoleManager),
			level:  booking.LevelManager,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := builder.NewBookingBuilder().With(c.mutate).BuildStored()
			before := b.Snapshot()

			_, err := b.Decide(c.actor, c.level, booking.ActionApprove, "", now.Add(time.Hour))

			require.ErrorIs(t, err, booking.ErrUnauthorized)
			if diff := cmp.Diff(before, b.Snapshot()); diff != "" {
				t.Errorf("booking mutated on rejected decision (-before +after):\n%s", diff)
			}
		})
	}
}

func TestCancel(t *testing.T) {
	tomorrow := today.AddDate(0, 0, 1)

	t.Run("申請者以外NG", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithDate(tomorrow).BuildStored()
		_, err := b.Cancel(uuid.New(), today, now)
		require.ErrorIs(t, err, booking.ErrNotOwner)
	})

	t.Run("終端状態NG", func(t *testing.T) {
		for _, st := range []string{"cancelled", "teacher_rejected", "admin_rejected", "manager_rejected"} {
			b := builder.NewBookingBuilder().WithDate(tomorrow).WithStatus(st).BuildStored()
			_, err := b.Cancel(b.ApplicantID(), today, now)
			require.ErrorIs(t, err, booking.ErrAlreadyTerminal, st)
		}
	})

	t.Run("当日は状態に関わらずNG", func(t *testing.T) {
		for _, st := range booking.OccupiedStatuses {
			b := builder.NewBookingBuilder().WithDate(today).WithStatus(string(st)).BuildStored()
			_, err := b.Cancel(b.ApplicantID(), today, now)
			require.ErrorIs(t, err, booking.ErrTooLate, string(st))
		}
	})

	t.Run("未承認の取消は返金無し", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().WithDate(tomorrow).BuildDomain()
		require.NoError(t, err)

		_, err = b.Cancel(b.ApplicantID(), today, now.Add(time.Minute))
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCancelled, b.Status())
		assert.True(t, b.RefundAmount().IsZero())
		assert.Equal(t, booking.PaymentUnpaid, b.PaymentStatus())
		assert.Equal(t, now.Add(time.Minute), b.UpdatedAt())
	})

	t.Run("学外の返金対象状態", func(t *testing.T) {
		cases := []struct {
			status   string
			refund   string
			refunded bool
		}{
			{"pending", "0", false},
			{"admin_approved", "0", false},
			{"payment_pending", "95.00", true},
			{"manager_approved", "95.00", true},
		}
		for _, c := range cases {
			t.Run(c.status, func(t *testing.T) {
				b := builder.NewBookingBuilder().AsExternal().WithDate(tomorrow).
					WithStatus(c.status).WithPayment("100.00", "unpaid").BuildStored()

				_, err := b.Cancel(b.ApplicantID(), today, now)
				require.NoError(t, err)
				assert.True(t, decimal.RequireFromString(c.refund).Equal(b.RefundAmount()), b.RefundAmount().String())
				assert.Equal(t, c.refunded, b.PaymentStatus() == booking.PaymentRefunded)
			})
		}
	})

	t.Run("学内の承認済みは返金無し", func(t *testing.T) {
		b := builder.NewBookingBuilder().AsTeacher().WithDate(tomorrow).WithStatus("manager_approved").BuildStored()
		_, err := b.Cancel(b.ApplicantID(), today, now)
		require.NoError(t, err)
		assert.True(t, b.RefundAmount().IsZero())
	})
}

func TestDisplacement(t *testing.T) {
	key := func(b *builder.BookingBuilder) { b.WithDate(time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)) }

	t.Run("学内申請は学外予約を押し出し95%返金", func(t *testing.T) {
		ext := builder.NewBookingBuilder().With(key).AsExternal().WithPayment("100", "unpaid").BuildStored()

		displace, err := booking.PlanDisplacement(booking.ClassStudent, []*booking.Booking{ext})
		require.NoError(t, err)
		require.Len(t, displace, 1)

		_, err = displace[0].Displace(now)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCancelled, ext.Status())
		assert.Equal(t, "95.00", ext.RefundAmount().StringFixed(2))
		assert.Equal(t, booking.PaymentRefunded, ext.PaymentStatus())
	})

	t.Run("未請求の学外予約は返金無しで押し出し", func(t *testing.T) {
		ext := builder.NewBookingBuilder().With(key).AsExternal().WithPayment("0", "unpaid").BuildStored()
		_, err := ext.Displace(now)
		require.NoError(t, err)
		assert.True(t, ext.RefundAmount().IsZero())
		assert.Equal(t, booking.PaymentUnpaid, ext.PaymentStatus())
	})

	t.Run("同じ区分同士は衝突", func(t *testing.T) {
		internal := builder.NewBookingBuilder().With(key).AsTeacher().BuildStored()
		_, err := booking.PlanDisplacement(booking.ClassStudent, []*booking.Booking{internal})
		require.ErrorIs(t, err, booking.ErrSlotConflict)

		ext := builder.NewBookingBuilder().With(key).AsExternal().BuildStored()
		_, err = booking.PlanDisplacement(booking.ClassExternal, []*booking.Booking{ext})
		require.ErrorIs(t, err, booking.ErrSlotConflict)
	})

	t.Run("学内と学外が混在すれば衝突", func(t *testing.T) {
		ext := builder.NewBookingBuilder().With(key).AsExternal().BuildStored()
		internal := builder.NewBookingBuilder().With(key).AsStudent().BuildStored()
		_, err := booking.PlanDisplacement(booking.ClassTeacher, []*booking.Booking{ext, internal})
		require.ErrorIs(t, err, booking.ErrSlotConflict)
		assert.Equal(t, booking.StatusPending, ext.Status())
	})

	t.Run("終端の予約は占有者に数えない", func(t *testing.T) {
		old := builder.NewBookingBuilder().With(key).AsTeacher().WithStatus("cancelled").BuildStored()
		displace, err := booking.PlanDisplacement(booking.ClassExternal, []*booking.Booking{old})
		require.NoError(t, err)
		assert.Empty(t, displace)
	})

	t.Run("学内予約は押し出せない", func(t *testing.T) {
		internal := builder.NewBookingBuilder().With(key).AsTeacher().BuildStored()
		_, err := internal.Displace(now)
		require.ErrorIs(t, err, booking.ErrInvalidTransition)
	})
}

func TestExpire(t *testing.T) {
	yesterday := today.AddDate(0, 0, -1)

	t.Run("日付を過ぎた未完了予約は取消", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithDate(yesterday).WithStatus("pending").BuildStored()
		_, err := b.Expire(today, now)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCancelled, b.Status())
	})

	t.Run("承認済みは対象外", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithDate(yesterday).WithStatus("manager_approved").BuildStored()
		_, err := b.Expire(today, now)
		require.ErrorIs(t, err, booking.ErrInvalidTransition)
	})

	t.Run("未来日は対象外", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithDate(today.AddDate(0, 0, 2)).BuildStored()
		_, err := b.Expire(today, now)
		require.ErrorIs(t, err, booking.ErrInvalidTransition)
	})
}

func TestMarkReturned(t *testing.T) {
	b := builder.NewBookingBuilder().AsTeacher().WithStatus("manager_approved").BuildStored()
	require.NoError(t, b.MarkReturned(now))
	require.NotNil(t, b.ReturnedAt())
	require.ErrorIs(t, b.MarkReturned(now), booking.ErrInvalidTransition)

	pending := builder.NewBookingBuilder().AsTeacher().BuildStored()
	require.ErrorIs(t, pending.MarkReturned(now), booking.ErrInvalidTransition)
}
