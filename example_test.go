package bowling_test

import (
	"errors"
	"fmt"

	bowling "github.com/josuelengronne/bowling-kata"
)

func ExampleGame() {
	game := bowling.NewGame()
	for _, pins := range []int{10, 7, 3, 9, 0, 10, 0, 8, 8, 2, 0, 6, 10, 10, 10, 8, 1} {
		if err := game.Roll(pins); err != nil {
			fmt.Println(err)
			return
		}
	}

	score, err := game.Score()
	fmt.Println(score, err)
	fmt.Println(game)
	// Output:
	// 167 <nil>
	// [(10,nil) (7,3) (9,0) (10,nil) (0,8) (8,2) (0,6) (10,nil) (10,nil) (10,nil) (8,1)]
}

func ExampleGame_Roll() {
	game := bowling.NewGame()
	game.Roll(5)

	err := game.Roll(6)
	fmt.Println(errors.Is(err, bowling.ErrTooManyPinsKnocked))
	fmt.Println(err)
	fmt.Println(game)
	// Output:
	// true
	// too many pins knocked: frame 1 would hold 11 pins
	// [(5,nil) ]
}

func ExampleGame_Score() {
	game := bowling.NewGame()
	for x := 0; x < 12; x++ {
		game.Roll(10)
	}

	score, _ := game.Score()
	fmt.Println(score)

	_, err := bowling.NewGame().Score()
	fmt.Println(err)
	// Output:
	// 300
	// game not finished
}
