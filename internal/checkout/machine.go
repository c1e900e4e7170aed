// Package checkout implements the checkout flow as a pure state machine:
// it consumes one line of user input at a time and yields the next state
// together with a prompt descriptor. It performs no I/O itself, which
// keeps the flow testable without a simulated input stream.
package checkout

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cinetix/booking-engine/internal/booking"
	"github.com/cinetix/booking-engine/internal/discount"
	"github.com/cinetix/booking-engine/internal/domain"
	"github.com/cinetix/booking-engine/internal/validator"
)

type State int

const (
	StateCartReview State = iota
	StateDiscountPrompt
	StateMethodMenu
	StateCardType
	StateCardholderName
	StateCardNumber
	StateExpiryDate
	StateCVV
	StateConfirm
	StateSaveMethodPrompt
	StateComplete
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateCartReview:
		return "cart-review"
	case StateDiscountPrompt:
		return "discount-prompt"
	case StateMethodMenu:
		return "method-menu"
	case StateCardType:
		return "card-type"
	case StateCardholderName:
		return "cardholder-name"
	case StateCardNumber:
		return "card-number"
	case StateExpiryDate:
		return "expiry-date"
	case StateCVV:
		return "cvv"
	case StateConfirm:
		return "confirm"
	case StateSaveMethodPrompt:
		return "save-method-prompt"
	case StateComplete:
		return "complete"
	case StateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

const (
	cartReviewPrompt = "1. Proceed to checkout\n2. Go back to the main menu\n3. Exit"
	discountPrompt   = "Enter discount code (or press Enter to skip): "
	methodMenuPrompt = "1. Use a saved payment method\n2. Use a new payment method"
	cardTypePrompt   = "Enter Card Type (Visa/MasterCard): "
	holderPrompt     = "Enter Cardholder Name: "
	cardNumberPrompt = "Enter Card Number: "
	expiryPrompt     = "Enter Expiry Date (MM/YY): "
	cvvPrompt        = "Enter CVV: "
	confirmPrompt    = "Press ENTER to confirm checkout"
	savePrompt       = "Do you want to save this payment method? (yes/no)\nNote: any previously saved method will be replaced."
)

// Step is what the machine hands back after every transition: the state
// it is now in, the prompt the driver should render, and an optional
// notice explaining a rejection or reporting progress.
type Step struct {
	State  State
	Prompt string
	Notice string
	Cart   []domain.Booking
	Total  decimal.Decimal
	Done   bool
	Exit   bool
}

// Checkout sequences cart review, discount application, payment-method
// entry, and the commit that clears the cart. Create one per checkout
// session with New, call Begin once, then feed it input via Submit until
// the returned Step has Done set.
type Checkout struct {
	ledger    *booking.Ledger
	discounts *discount.Engine
	methods   domain.PaymentMethodRepository
	now       func() time.Time

	state     State
	total     decimal.Decimal
	method    domain.PaymentMethod
	newMethod bool
}

func New(ledger *booking.Ledger, discounts *discount.Engine, methods domain.PaymentMethodRepository) *Checkout {
	return &Checkout{
		ledger:    ledger,
		discounts: discounts,
		methods:   methods,
		now:       time.Now,
		state:     StateCartReview,
	}
}

// Begin starts the session. With an empty cart the session aborts
// immediately: the discount and payment states are unreachable and
// nothing is cleared.
func (c *Checkout) Begin() Step {
	cart := c.ledger.List()
	if len(cart) == 0 {
		c.state = StateAborted
		return Step{
			State:  StateAborted,
			Notice: "Shopping cart is empty, come back after booking tickets.",
			Done:   true,
		}
	}

	c.total = c.ledger.Total()
	c.state = StateCartReview

	return Step{
		State:  StateCartReview,
		Prompt: cartReviewPrompt,
		Cart:   cart,
		Total:  c.total,
	}
}

// Submit feeds one line of input into the machine. Malformed input
// re-prompts in place; an explicit exit choice aborts with Exit set so
// the driver can terminate the process.
func (c *Checkout) Submit(input string) Step {
	trimmed := strings.TrimSpace(input)

	if c.state != StateConfirm && c.state != StateSaveMethodPrompt && strings.EqualFold(trimmed, "exit") {
		return c.abort(true)
	}

	switch c.state {
	case StateCartReview:
		return c.submitCartReview(trimmed)
	case StateDiscountPrompt:
		return c.submitDiscountCode(trimmed)
	case StateMethodMenu:
		return c.submitMethodChoice(trimmed)
	case StateCardType, StateCardholderName, StateCardNumber, StateExpiryDate, StateCVV:
		return c.submitCardField(trimmed)
	case StateConfirm:
		return c.submitConfirmation(trimmed)
	case StateSaveMethodPrompt:
		return c.submitSaveChoice(trimmed)
	default:
		// Terminal states stay put.
		return Step{State: c.state, Total: c.total, Done: true}
	}
}

func (c *Checkout) submitCartReview(input string) Step {
	choice, err := strconv.Atoi(input)
	if err != nil {
		return c.step(cartReviewPrompt, "Invalid input. Please enter a number.")
	}

	switch choice {
	case 1:
		c.state = StateDiscountPrompt
		return c.step(discountPrompt, "")
	case 2:
		return c.abort(false)
	case 3:
		return c.abort(true)
	default:
		return c.step(cartReviewPrompt, "Invalid input. Please enter a valid number.")
	}
}

func (c *Checkout) submitDiscountCode(code string) Step {
	if code == "" {
		c.state = StateMethodMenu
		return c.step(methodMenuPrompt, "")
	}

	switch {
	case len(strings.Fields(code)) != 1:
		return c.step(discountPrompt, "The discount code must be a single word, no spaces.")
	case !c.discounts.WellFormed(code):
		return c.step(discountPrompt, "The discount code contains invalid characters. Only letters, digits, hyphens, and underscores are allowed.")
	case !c.discounts.IsValidCode(code):
		return c.step(discountPrompt, "The discount code does not exist, try another one.")
	}

	c.total = c.discounts.Apply(code, c.total)
	c.state = StateMethodMenu

	return c.step(methodMenuPrompt, fmt.Sprintf("Discount code applied. Discounted total price = %s", c.total))
}

func (c *Checkout) submitMethodChoice(input string) Step {
	choice, err := strconv.Atoi(input)
	if err != nil {
		return c.step(methodMenuPrompt, "Invalid input. Please enter a number.")
	}

	switch choice {
	case 1:
		saved, ok := c.methods.Get()
		if !ok {
			c.state = StateCardType
			return c.step(cardTypePrompt, "No saved payment method. Please enter a new one.")
		}

		c.method = saved
		c.newMethod = false
		c.state = StateConfirm

		return c.step(confirmPrompt, fmt.Sprintf("Paying with saved %s ending in %s.", saved.CardType, lastFour(saved.CardNumber)))
	case 2:
		c.state = StateCardType
		return c.step(cardTypePrompt, "")
	default:
		return c.step(methodMenuPrompt, "Invalid input. Please enter a valid number.")
	}
}

func (c *Checkout) submitCardField(input string) Step {
	switch c.state {
	case StateCardType:
		if !validator.IsValidCardType(input) {
			return c.step(cardTypePrompt, "Invalid card type. Please enter Visa or MasterCard.")
		}
		c.method.CardType = input
		c.state = StateCardholderName
		return c.step(holderPrompt, "")

	case StateCardholderName:
		if !validator.IsValidCardholderName(input) {
			return c.step(holderPrompt, "Invalid name. Only letters and spaces are allowed.")
		}
		c.method.CardholderName = input
		c.state = StateCardNumber
		return c.step(cardNumberPrompt, "")

	case StateCardNumber:
		if !validator.IsValidCardNumber(input) {
			return c.step(cardNumberPrompt, "Invalid card number. It must be exactly 16 digits.")
		}
		c.method.CardNumber = input
		c.state = StateExpiryDate
		return c.step(expiryPrompt, "")

	case StateExpiryDate:
		if !validator.IsValidExpiryDateAt(input, c.now()) {
			return c.step(expiryPrompt, "Invalid expiry date. Format must be MM/YY and must not be in the past.")
		}
		c.method.ExpiryDate = input
		c.state = StateCVV
		return c.step(cvvPrompt, "")

	default: // StateCVV
		if !validator.IsValidCVV(input) {
			return c.step(cvvPrompt, "Invalid CVV. It must be exactly 3 digits.")
		}
		c.method.CVV = input
		c.newMethod = true
		c.state = StateConfirm
		return c.step(confirmPrompt, "")
	}
}

// submitConfirmation is the single commit point: the cart is cleared here
// and nothing fallible runs afterwards.
func (c *Checkout) submitConfirmation(input string) Step {
	if strings.EqualFold(input, "exit") {
		return c.abort(true)
	}
	if input != "" {
		return c.step(confirmPrompt, "")
	}

	c.ledger.Clear()

	if c.newMethod {
		c.state = StateSaveMethodPrompt
		return c.step(savePrompt, "Payment successful. Enjoy the show!")
	}

	c.state = StateComplete
	return Step{
		State:  StateComplete,
		Notice: "Payment successful. Enjoy the show!",
		Total:  c.total,
		Done:   true,
	}
}

func (c *Checkout) submitSaveChoice(input string) Step {
	saved := strings.EqualFold(input, "yes")
	if saved {
		c.methods.Save(c.method)
	}

	exit := strings.EqualFold(input, "exit")
	notice := "Payment method was not saved."
	if saved {
		notice = "Payment method saved."
	}

	c.state = StateComplete
	return Step{
		State:  StateComplete,
		Notice: notice,
		Total:  c.total,
		Done:   true,
		Exit:   exit,
	}
}

func (c *Checkout) step(prompt, notice string) Step {
	return Step{State: c.state, Prompt: prompt, Notice: notice, Total: c.total}
}

func (c *Checkout) abort(exit bool) Step {
	c.state = StateAborted
	return Step{State: StateAborted, Total: c.total, Done: true, Exit: exit}
}

func lastFour(cardNumber string) string {
	if len(cardNumber) < 4 {
		return cardNumber
	}
	return cardNumber[len(cardNumber)-4:]
}
