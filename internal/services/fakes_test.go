package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"polisure/internal/models/db_models"
	"polisure/internal/repositories"
)

// In-memory fakes for the repository interfaces. IDs and timestamps that
// gorm hooks would normally assign are filled in on insert.

func stamp(m *db_models.BaseModel) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	now := time.Now().Unix()
	if m.CreatedAt == 0 {
		m.CreatedAt = now
	}
	m.UpdatedAt = now
}

type fakeUserRepo struct {
	users map[uuid.UUID]*db_models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*db_models.User{}}
}

func (f *fakeUserRepo) Insert(_ context.Context, user *db_models.User) error {
	stamp(&user.BaseModel)
	if user.Role == "" {
		user.Role = db_models.RoleCustomer
	}
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *db_models.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return errors.New("user not found")
	}
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *user
	if cp.AssignedAgentID != nil {
		if agent, ok := f.users[*cp.AssignedAgentID]; ok {
			ac := *agent
			cp.AssignedAgent = &ac
		}
	}
	return &cp, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*db_models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			cp := *user
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) ListAll(_ context.Context) ([]db_models.User, error) {
	out := make([]db_models.User, 0, len(f.users))
	for _, user := range f.users {
		out = append(out, *user)
	}
	return out, nil
}

func (f *fakeUserRepo) ListCustomersByAgent(_ context.Context, agentID uuid.UUID) ([]db_models.User, error) {
	var out []db_models.User
	for _, user := range f.users {
		if user.Role == db_models.RoleCustomer && user.AssignedAgentID != nil && *user.AssignedAgentID == agentID {
			out = append(out, *user)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) CountByRole(_ context.Context, role db_models.Role) (int64, error) {
	var n int64
	for _, user := range f.users {
		if user.Role == role {
			n++
		}
	}
	return n, nil
}

func (f *fakeUserRepo) CountCustomersByAgent(ctx context.Context, agentID uuid.UUID) (int64, error) {
	customers, _ := f.ListCustomersByAgent(ctx, agentID)
	return int64(len(customers)), nil
}

type fakeProductRepo struct {
	products map[uuid.UUID]*db_models.PolicyProduct
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[uuid.UUID]*db_models.PolicyProduct{}}
}

func (f *fakeProductRepo) Insert(_ context.Context, product *db_models.PolicyProduct) error {
	stamp(&product.BaseModel)
	cp := *product
	f.products[product.ID] = &cp
	return nil
}

func (f *fakeProductRepo) Update(_ context.Context, product *db_models.PolicyProduct) error {
	cp := *product
	f.products[product.ID] = &cp
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.PolicyProduct, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	cp := *product
	return &cp, nil
}

func (f *fakeProductRepo) FindByCode(_ context.Context, code string) (*db_models.PolicyProduct, error) {
	for _, product := range f.products {
		if product.Code == code {
			cp := *product
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) ListAll(_ context.Context) ([]db_models.PolicyProduct, error) {
	out := make([]db_models.PolicyProduct, 0, len(f.products))
	for _, product := range f.products {
		out = append(out, *product)
	}
	return out, nil
}

func (f *fakeProductRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.products)), nil
}

type fakePaymentRepo struct {
	payments []db_models.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{}
}

func (f *fakePaymentRepo) Insert(_ context.Context, payment *db_models.Payment) error {
	stamp(&payment.BaseModel)
	f.payments = append(f.payments, *payment)
	return nil
}

func (f *fakePaymentRepo) ExistsByReference(_ context.Context, reference string) (bool, error) {
	for _, payment := range f.payments {
		if payment.Reference == reference {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePaymentRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]db_models.Payment, error) {
	var out []db_models.Payment
	for _, payment := range f.payments {
		if payment.UserID == userID {
			out = append(out, payment)
		}
	}
	return out, nil
}

type fakeUserPolicyRepo struct {
	policies map[uuid.UUID]*db_models.UserPolicy
	payments *fakePaymentRepo
}

func newFakeUserPolicyRepo(payments *fakePaymentRepo) *fakeUserPolicyRepo {
	return &fakeUserPolicyRepo{policies: map[uuid.UUID]*db_models.UserPolicy{}, payments: payments}
}

func (f *fakeUserPolicyRepo) CreateWithPayment(ctx context.Context, policy *db_models.UserPolicy, payment *db_models.Payment) error {
	stamp(&policy.BaseModel)
	cp := *policy
	f.policies[policy.ID] = &cp
	payment.UserPolicyID = policy.ID
	return f.payments.Insert(ctx, payment)
}

func (f *fakeUserPolicyRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.UserPolicy, error) {
	policy, ok := f.policies[id]
	if !ok {
		return nil, nil
	}
	cp := *policy
	return &cp, nil
}

func (f *fakeUserPolicyRepo) FindOwnedActive(_ context.Context, id, userID uuid.UUID) (*db_models.UserPolicy, error) {
	policy, ok := f.policies[id]
	if !ok || policy.UserID != userID || policy.Status != db_models.UserPolicyActive {
		return nil, nil
	}
	cp := *policy
	return &cp, nil
}

func (f *fakeUserPolicyRepo) HasOpenSubscription(_ context.Context, userID, productID uuid.UUID) (bool, error) {
	for _, policy := range f.policies {
		if policy.UserID == userID && policy.PolicyProductID == productID &&
			(policy.Status == db_models.UserPolicyActive || policy.Status == db_models.UserPolicyPending) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserPolicyRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]db_models.UserPolicy, error) {
	var out []db_models.UserPolicy
	for _, policy := range f.policies {
		if policy.UserID == userID {
			out = append(out, *policy)
		}
	}
	return out, nil
}

func (f *fakeUserPolicyRepo) Cancel(_ context.Context, id, userID uuid.UUID) (*db_models.UserPolicy, error) {
	policy, ok := f.policies[id]
	if !ok || policy.UserID != userID || policy.Status != db_models.UserPolicyActive {
		return nil, nil
	}
	policy.Status = db_models.UserPolicyCancelled
	cp := *policy
	return &cp, nil
}

type fakeClaimRepo struct {
	claims map[uuid.UUID]*db_models.Claim
	users  *fakeUserRepo
}

func newFakeClaimRepo(users *fakeUserRepo) *fakeClaimRepo {
	return &fakeClaimRepo{claims: map[uuid.UUID]*db_models.Claim{}, users: users}
}

func (f *fakeClaimRepo) Insert(_ context.Context, claim *db_models.Claim) error {
	stamp(&claim.BaseModel)
	if claim.Status == "" {
		claim.Status = db_models.ClaimPending
	}
	cp := *claim
	f.claims[claim.ID] = &cp
	return nil
}

func (f *fakeClaimRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Claim, error) {
	claim, ok := f.claims[id]
	if !ok {
		return nil, nil
	}
	cp := *claim
	if owner, _ := f.users.FindByID(ctx, cp.UserID); owner != nil {
		cp.User = *owner
	}
	return &cp, nil
}

func (f *fakeClaimRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]db_models.Claim, error) {
	var out []db_models.Claim
	for _, claim := range f.claims {
		if claim.UserID == userID {
			out = append(out, *claim)
		}
	}
	return out, nil
}

func (f *fakeClaimRepo) ListForAgent(ctx context.Context, agentID uuid.UUID, onlyPending bool) ([]db_models.Claim, error) {
	customers, _ := f.users.ListCustomersByAgent(ctx, agentID)
	assigned := map[uuid.UUID]bool{}
	for _, customer := range customers {
		assigned[customer.ID] = true
	}

	var out []db_models.Claim
	for _, claim := range f.claims {
		if !assigned[claim.UserID] {
			continue
		}
		if onlyPending && claim.Status != db_models.ClaimPending {
			continue
		}
		out = append(out, *claim)
	}
	return out, nil
}

func (f *fakeClaimRepo) ListAll(_ context.Context) ([]db_models.Claim, error) {
	out := make([]db_models.Claim, 0, len(f.claims))
	for _, claim := range f.claims {
		out = append(out, *claim)
	}
	return out, nil
}

func (f *fakeClaimRepo) UpdateDecision(_ context.Context, claim *db_models.Claim) error {
	stored, ok := f.claims[claim.ID]
	if !ok {
		return errors.New("claim not found")
	}
	stored.Status = claim.Status
	stored.DecisionNotes = claim.DecisionNotes
	stored.DecidedByAgentID = claim.DecidedByAgentID
	stored.DecidedAt = claim.DecidedAt
	stored.ApprovedAmount = claim.ApprovedAmount
	stored.UpdatedAt = time.Now().Unix()
	return nil
}

func (f *fakeClaimRepo) statsOver(claims []db_models.Claim) *repositories.ClaimStatsRow {
	row := &repositories.ClaimStatsRow{}
	for _, claim := range claims {
		row.TotalClaims++
		row.TotalClaimedAmount += claim.AmountClaimed
		switch claim.Status {
		case db_models.ClaimPending:
			row.PendingClaims++
		case db_models.ClaimApproved:
			row.ApprovedClaims++
			if claim.ApprovedAmount != nil {
				row.TotalApprovedAmount += *claim.ApprovedAmount
			}
		case db_models.ClaimRejected:
			row.RejectedClaims++
		}
	}
	return row
}

func (f *fakeClaimRepo) StatsForUser(ctx context.Context, userID uuid.UUID) (*repositories.ClaimStatsRow, error) {
	claims, _ := f.ListByUser(ctx, userID)
	return f.statsOver(claims), nil
}

func (f *fakeClaimRepo) StatsForAgent(ctx context.Context, agentID uuid.UUID) (*repositories.ClaimStatsRow, error) {
	claims, _ := f.ListForAgent(ctx, agentID, false)
	return f.statsOver(claims), nil
}

func (f *fakeClaimRepo) StatsGlobal(ctx context.Context) (*repositories.ClaimStatsRow, error) {
	claims, _ := f.ListAll(ctx)
	return f.statsOver(claims), nil
}

func (f *fakeClaimRepo) monthlyOver(claims []db_models.Claim, limit int) []repositories.MonthBucketRow {
	type key struct{ year, month int }
	grouped := map[key]*repositories.MonthBucketRow{}
	for _, claim := range claims {
		t := time.Unix(claim.CreatedAt, 0)
		k := key{t.Year(), int(t.Month())}
		row, ok := grouped[k]
		if !ok {
			row = &repositories.MonthBucketRow{Year: k.year, Month: k.month}
			grouped[k] = row
		}
		row.Count++
		row.TotalAmount += claim.AmountClaimed
	}

	rows := make([]repositories.MonthBucketRow, 0, len(grouped))
	for _, row := range grouped {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Year != rows[j].Year {
			return rows[i].Year > rows[j].Year
		}
		return rows[i].Month > rows[j].Month
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

func (f *fakeClaimRepo) MonthlyForAgent(ctx context.Context, agentID uuid.UUID, limit int) ([]repositories.MonthBucketRow, error) {
	claims, _ := f.ListForAgent(ctx, agentID, false)
	return f.monthlyOver(claims, limit), nil
}

func (f *fakeClaimRepo) MonthlyGlobal(ctx context.Context, limit int) ([]repositories.MonthBucketRow, error) {
	claims, _ := f.ListAll(ctx)
	return f.monthlyOver(claims, limit), nil
}

type fakeAuditRepo struct {
	entries []db_models.AuditLog
}

func newFakeAuditRepo() *fakeAuditRepo {
	return &fakeAuditRepo{}
}

func (f *fakeAuditRepo) Insert(_ context.Context, entry *db_models.AuditLog) error {
	stamp(&entry.BaseModel)
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeAuditRepo) ListRecent(_ context.Context, limit int) ([]db_models.AuditLog, error) {
	if len(f.entries) > limit {
		return f.entries[len(f.entries)-limit:], nil
	}
	return f.entries, nil
}

func (f *fakeAuditRepo) actions() []string {
	out := make([]string, 0, len(f.entries))
	for _, entry := range f.entries {
		out = append(out, entry.Action)
	}
	return out
}

type fakeObjectStore struct {
	uploads int
	err     error
}

func (f *fakeObjectStore) UploadDataURL(_ context.Context, folder string, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.uploads++
	return "https://cdn.test/" + folder + "/" + uuid.New().String() + ".jpg", nil
}

type fakeNotifier struct {
	sent []Notification
}

func (f *fakeNotifier) Notify(n Notification) {
	f.sent = append(f.sent, n)
}
