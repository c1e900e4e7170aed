package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cinetix/booking-engine/internal/checkout"
	"github.com/cinetix/booking-engine/internal/domain"
)

// errExit signals that the user chose to terminate the whole process.
var errExit = errors.New("exit requested")

type console struct {
	app *Application
	in  *bufio.Scanner
	out io.Writer
}

// Run drives the interactive session until the user exits or input runs
// out. It never calls os.Exit itself; the entrypoint decides how to
// terminate.
func (app *Application) Run(in io.Reader, out io.Writer) error {
	c := &console{
		app: app,
		in:  bufio.NewScanner(in),
		out: out,
	}

	err := c.mainMenu()
	if errors.Is(err, errExit) || errors.Is(err, io.EOF) {
		return nil
	}

	return err
}

func (c *console) mainMenu() error {
	for {
		fmt.Fprintln(c.out, "\n--- Cinema Booking ---")
		fmt.Fprintln(c.out, "1. Browse movies")
		fmt.Fprintln(c.out, "2. Bookings")
		fmt.Fprintln(c.out, "3. Checkout")
		fmt.Fprintln(c.out, "4. Exit")

		choice, err := c.readMenuChoice(1, 4)
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			if err := c.browseMenu(); err != nil {
				return err
			}
		case 2:
			if err := c.bookingMenu(); err != nil {
				return err
			}
		case 3:
			if err := c.runCheckout(); err != nil {
				return err
			}
		case 4:
			fmt.Fprintln(c.out, "Exiting the system. Goodbye!")
			return errExit
		}
	}
}

func (c *console) browseMenu() error {
	for {
		fmt.Fprintln(c.out, "\n--- Browse & Search Movies ---")
		fmt.Fprintln(c.out, "1. Browse all movies")
		fmt.Fprintln(c.out, "2. Search by title")
		fmt.Fprintln(c.out, "3. Search by language")
		fmt.Fprintln(c.out, "4. Search by rating")
		fmt.Fprintln(c.out, "5. Return to main menu")

		choice, err := c.readMenuChoice(1, 5)
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			c.printMovies(c.app.catalog.All())
		case 2:
			term, err := c.readLine("Enter the title to search for: ")
			if err != nil {
				return err
			}
			c.printMovies(c.app.catalog.SearchByTitle(term))
		case 3:
			lang, err := c.readLine("Enter the language to search for: ")
			if err != nil {
				return err
			}
			movies, err := c.app.catalog.SearchByLanguage(lang)
			if errors.Is(err, domain.ErrInvalidLanguageQuery) {
				fmt.Fprintln(c.out, "Language cannot contain numbers or special characters.")
				continue
			}
			c.printMovies(movies)
		case 4:
			if err := c.searchByRating(); err != nil {
				return err
			}
		case 5:
			return nil
		}
	}
}

func (c *console) searchByRating() error {
	min, err := c.readFloat("Enter the minimum IMDb rating: ")
	if err != nil {
		return err
	}
	max, err := c.readFloat("Enter the maximum IMDb rating: ")
	if err != nil {
		return err
	}

	movies, err := c.app.catalog.SearchByRating(min, max)
	if errors.Is(err, domain.ErrInvalidRatingRange) {
		fmt.Fprintln(c.out, "Invalid rating range. Please enter ratings between 0 and 10.")
		return nil
	}

	c.printMovies(movies)
	return nil
}

func (c *console) bookingMenu() error {
	for {
		fmt.Fprintln(c.out, "\n--- Movie Booking ---")
		fmt.Fprintln(c.out, "1. Book a movie")
		fmt.Fprintln(c.out, "2. View all bookings")
		fmt.Fprintln(c.out, "3. Cancel a booking")
		fmt.Fprintln(c.out, "4. Return to main menu")

		choice, err := c.readMenuChoice(1, 4)
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			title, err := c.readLine("Enter movie title: ")
			if err != nil {
				return err
			}
			showtime, err := c.readLine("Enter showtime: ")
			if err != nil {
				return err
			}

			booked, ok := c.app.ledger.Book(title, showtime)
			if !ok {
				fmt.Fprintln(c.out, "Movie or showtime not found.")
				continue
			}
			fmt.Fprintf(c.out, "Booking successful! ID: %s (%s at %s, %s %s)\n",
				booked.ID, booked.MovieTitle, booked.Showtime, c.app.config.Currency, booked.Price)
		case 2:
			bookings := c.app.ledger.List()
			if len(bookings) == 0 {
				fmt.Fprintln(c.out, "No bookings available.")
				continue
			}
			for _, b := range bookings {
				fmt.Fprintf(c.out, "%s | %s at %s | %s %s\n",
					b.ID, b.MovieTitle, b.Showtime, c.app.config.Currency, b.Price)
			}
			fmt.Fprintf(c.out, "Total bookings: %d\n", len(bookings))
		case 3:
			id, err := c.readLine("Enter booking ID to cancel: ")
			if err != nil {
				return err
			}
			if c.app.ledger.Cancel(id) {
				fmt.Fprintln(c.out, "Booking cancelled successfully.")
			} else {
				fmt.Fprintln(c.out, "Booking ID not found.")
			}
		case 4:
			return nil
		}
	}
}

// runCheckout renders checkout machine steps and feeds user lines back in
// until the session reaches a terminal state.
func (c *console) runCheckout() error {
	session := checkout.New(c.app.ledger, c.app.discounts, c.app.methodRepo)

	step := session.Begin()
	for {
		c.renderStep(step)
		if step.Done {
			if step.Exit {
				return errExit
			}
			return nil
		}

		line, err := c.readLine("")
		if err != nil {
			return err
		}

		step = session.Submit(line)
	}
}

func (c *console) renderStep(step checkout.Step) {
	if len(step.Cart) > 0 {
		fmt.Fprintln(c.out, "\nShopping cart:")
		for _, b := range step.Cart {
			fmt.Fprintf(c.out, "%s | %s at %s | %s %s\n",
				b.ID, b.MovieTitle, b.Showtime, c.app.config.Currency, b.Price)
		}
		fmt.Fprintf(c.out, "Total price = %s %s\n", c.app.config.Currency, step.Total)
	}

	if step.Notice != "" {
		fmt.Fprintln(c.out, step.Notice)
	}
	if step.Prompt != "" {
		fmt.Fprintln(c.out, step.Prompt)
	}
}

func (c *console) printMovies(movies []domain.Movie) {
	if len(movies) == 0 {
		fmt.Fprintln(c.out, "No movies found.")
		return
	}

	for _, m := range movies {
		fmt.Fprintf(c.out, "%s | %s | IMDb %.1f | %d min | %s hall | showtimes: %s\n",
			m.Title, m.Language, m.Rating, m.Duration, m.Hall, strings.Join(m.Showtimes, ", "))
	}
}

func (c *console) readLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(c.out, prompt)
	}

	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	return c.in.Text(), nil
}

// readMenuChoice re-prompts until the user enters a number within
// [min, max].
func (c *console) readMenuChoice(min, max int) (int, error) {
	for {
		line, err := c.readLine("Enter your choice: ")
		if err != nil {
			return 0, err
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(c.out, "Invalid input. Please enter a number.")
			continue
		}
		if choice < min || choice > max {
			fmt.Fprintln(c.out, "Invalid input. Please enter a valid number.")
			continue
		}

		return choice, nil
	}
}

func (c *console) readFloat(prompt string) (float64, error) {
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return 0, err
		}

		value, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err != nil {
			fmt.Fprintln(c.out, "Invalid input. Please enter a number.")
			continue
		}

		return value, nil
	}
}
